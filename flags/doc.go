// Package flags implements per-pixel bitmask planes for detector images and
// spectra.
//
// A Plane pairs one unsigned integer with every element of a data array.
// Each bit encodes an independent condition (bad pixel, saturation, cosmic
// ray, Littrow ghost, persistence, ...). Conditions are accumulated with
// bitwise OR, so applying the same flag twice is a no-op and distinct flags
// compose in any order.
//
// Keeping flags on separate bit positions is the caller's responsibility;
// the Plane does not check that two codes are disjoint. The standard APOGEE
// pixel mask bits are predefined as Flag constants.
package flags
