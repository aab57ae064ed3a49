// Package diagnostic collects structured errors and warnings found while
// checking binding files against the registered converters and views.
//
// Each diagnostic names the view and member it concerns and, where a name
// was misspelled, the closest known alternatives.
package diagnostic
