// Package render draws integrated embeddings: a 2D scatter of two chosen
// embedding components, one colour per condition, saved as an image.
//
// This is the tutorials' "plot the first two components" step, nothing
// more — nonlinear layouts (UMAP, t-SNE) belong to external tools that
// consume the embedding matrix.
package render
