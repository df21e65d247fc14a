package ot

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a font parsing error.
//
// Kinds which make the whole input unparseable (KindUnrecognizedFormat at the
// outer container level, KindCorruptCollection) propagate to the caller as
// error returns. Kinds scoped to a single embedded font (KindMissingTable,
// KindUnsupportedNameFormat, KindOutOfBounds on a table) are recovered
// locally: the affected font is reported with empty or uncertain fields and
// sibling fonts continue processing.
type ErrorKind int

const (
	// KindNone is the zero kind; it marks an unclassified error.
	KindNone ErrorKind = iota
	// KindOutOfBounds indicates a read exceeding the font buffer.
	KindOutOfBounds
	// KindUnrecognizedFormat indicates an sfnt version tag which is not recognized.
	KindUnrecognizedFormat
	// KindCorruptCollection indicates an inconsistent TTC header.
	KindCorruptCollection
	// KindMissingTable indicates a lookup of a table the font does not contain.
	KindMissingTable
	// KindUnsupportedNameFormat indicates a 'name' table format other than 0 or 1.
	KindUnsupportedNameFormat
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindOutOfBounds:
		return "OutOfBounds"
	case KindUnrecognizedFormat:
		return "UnrecognizedFormat"
	case KindCorruptCollection:
		return "CorruptCollection"
	case KindMissingTable:
		return "MissingTable"
	case KindUnsupportedNameFormat:
		return "UnsupportedNameFormat"
	default:
		return "Unclassified"
	}
}

// ErrorSeverity represents the severity level of a font parsing error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font unusable or unreliable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates a significant error that may affect functionality but doesn't prevent usage.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered during font parsing.
// Errors are accumulated during initial parsing and can be inspected after
// parsing completes. The Offset field names the byte offset in the font file
// where the condition was detected.
type FontError struct {
	Kind     ErrorKind     // Classification of the failure
	Table    Tag           // The table where the error occurred, zero for container-level errors
	Section  string        // Specific section within the table (e.g., "Header", "NameRecord")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font file where the error occurred (0 if unknown)
}

// Error implements the error interface.
func (e FontError) Error() string {
	where := e.Section
	if e.Table != 0 {
		where = e.Table.String() + "/" + e.Section
	}
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s %s at offset %d: %s", e.Severity, e.Kind, where, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s %s: %s", e.Severity, e.Kind, where, e.Issue)
}

// IsKind reports whether err is (or wraps) a FontError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ferr FontError
	if errors.As(err, &ferr) {
		return ferr.Kind == kind
	}
	return false
}

// FontWarning represents a non-critical anomaly encountered during font
// parsing. Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Table  Tag    // The table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font file where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates errors and warnings during font parsing.
// This is an internal helper used by the parser to collect issues as they
// are discovered.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

// addError records a parsing error.
func (ec *errorCollector) addError(kind ErrorKind, table Tag, section string, issue string,
	severity ErrorSeverity, offset uint32) {
	//
	ec.errors = append(ec.errors, FontError{
		Kind:     kind,
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
	})
}

// addWarning records a parsing warning.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}

// hasErrors returns true if any errors have been recorded.
func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}

// hasCriticalErrors returns true if any critical errors have been recorded.
func (ec *errorCollector) hasCriticalErrors() bool {
	for _, err := range ec.errors {
		if err.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
