// Package spmap computes the S-P distance circles drawn on the map: which
// picks produce a circle, where each circle is centred on the map panel and
// how large it is, and a GeoJSON rendition for external map tools.
package spmap
