// 31 July 2020

// Randxtal is for making random crystals and timing the interface search
// on them.
//
// Usage:
//
//	randxtal [options] fname nchain length
//
// will put nchain random chains of length residues in a unit cell, find
// every interface in the crystal and write them to fname ("-" for stdout).
//
// Flags:
//
//	-c
//		YAML config file. Settings there are overridden by XTAL_
//		environment variables, which are overridden by flags.
//	-r
//		random number seed
//	--sg
//		space group, like "P 21 21 21". Empty means no crystal, so
//		only chains of the unit are compared with each other.
//	--cell
//		a,b,c,alpha,beta,gamma
//	--cutoff, --cells, --workers, --detector, --hetero, --pad
//		search settings
//	-v
//		log search progress
//	--metrics
//		print the search counters to stderr at the end
//
// The content of the chains is not important. They are random walks
// with CA spacing, a hydrogen on each CA and the odd water.
package main
