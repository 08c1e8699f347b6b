package bqddl

import "fmt"

// ConversionStats accumulates counters over one conversion run. A fresh
// accumulator is created per run so batch processing never cross-contaminates
// counts between files.
type ConversionStats struct {
	// Tables is the number of table blocks opened.
	Tables int
	// Columns is the total number of column lines emitted.
	Columns int
	// UnknownTypes is the number of columns whose raw type had no entry in
	// the dialect table.
	UnknownTypes int
	// Diagnostics holds the non-fatal warnings produced during the run
	// (unknown types, capacity overflows, sweep skips).
	Diagnostics []string

	typeOrder  []string
	typeCounts map[string]int

	tableOrder []string
	tableOpens map[string]int
}

// TypeCount is one entry of the raw-type frequency listing.
type TypeCount struct {
	Name  string
	Count int
}

// TableOpens is one entry of the duplicate-table listing: how many times a
// table name opened a new block.
type TableOpens struct {
	Name  string
	Opens int
}

func newConversionStats() *ConversionStats {
	return &ConversionStats{
		typeCounts: make(map[string]int),
		tableOpens: make(map[string]int),
	}
}

// recordType counts one occurrence of a normalized raw type, preserving
// first-occurrence order.
func (s *ConversionStats) recordType(name string) {
	if _, ok := s.typeCounts[name]; !ok {
		s.typeOrder = append(s.typeOrder, name)
	}
	s.typeCounts[name]++
}

// recordTableOpen counts one block opening for a table name, preserving
// first-occurrence order.
func (s *ConversionStats) recordTableOpen(name string) {
	if _, ok := s.tableOpens[name]; !ok {
		s.tableOrder = append(s.tableOrder, name)
	}
	s.tableOpens[name]++
}

func (s *ConversionStats) warnf(format string, args ...any) {
	s.Diagnostics = append(s.Diagnostics, fmt.Sprintf(format, args...))
}

// TypeFrequency returns every distinct raw type encountered with its
// occurrence count, ordered by first occurrence.
func (s *ConversionStats) TypeFrequency() []TypeCount {
	freq := make([]TypeCount, 0, len(s.typeOrder))
	for _, name := range s.typeOrder {
		freq = append(freq, TypeCount{Name: name, Count: s.typeCounts[name]})
	}
	return freq
}

// DuplicateTables returns the table names that opened more than one block,
// ordered by first occurrence. A non-empty result means the input violated
// the grouped-by-table contiguity assumption.
func (s *ConversionStats) DuplicateTables() []TableOpens {
	var dups []TableOpens
	for _, name := range s.tableOrder {
		if opens := s.tableOpens[name]; opens > 1 {
			dups = append(dups, TableOpens{Name: name, Opens: opens})
		}
	}
	return dups
}
