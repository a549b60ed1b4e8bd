// Package grouping partitions participants into shared rides from their
// scalar time values.
//
// Assignment runs in two phases. Ward minimum-variance agglomerative
// clustering builds a dendrogram over the 1-D times, which is cut at the
// configured maximum time difference. Clusters that still hold more people
// than fit in a car are then sorted by time and split into balanced
// contiguous sub-groups, each split-off part receiving a fresh label.
//
// The cut bounds merge heights, not pairwise distances: a chain of close
// arrivals can form one cluster whose extremes lie further apart than the
// threshold. Splitting only ever narrows such a cluster.
package grouping
