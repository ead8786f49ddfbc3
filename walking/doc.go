// Package walking assigns consistent left/right foot labels across the
// frames of one walking pass, disambiguating the sign of a PCA-fit
// direction of motion by majority vote and swapping feet on the frames
// that disagree with it.
package walking
