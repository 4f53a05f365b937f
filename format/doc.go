// Package format renders program images and microcode tables into the
// file formats consumed by hardware tools and HDL simulators, and into
// human-readable listings.
package format
