// Package atomic provides the boundary-unaware feature sources the
// enumeration engine wraps.
//
// A Source answers one question: for the segment (prevPos, pos] of a
// sequence, which raw feature identifiers fire? It fills ID, Name, Label and
// PrevLabel of the record it is given and never touches the boundary. The
// generator package decides where those features apply.
//
// Families:
//
//	Start       first segment of the sequence, one feature per label
//	End         last segment of the sequence, one feature per label
//	ClassPrior  every segment, one feature per label
//	Edge        every segment with a predecessor, one per (prev, label)
//	Word        token identity from a trained Dictionary, per seen label
//	Regex       token shape patterns, label independent
//
// Training:
//
//	Word reports RequiresTraining until its Dictionary is frozen; its Train
//	counts one (token, label) pair. Train each dictionary once, then Freeze
//	it before sharing it across goroutines.
package atomic
