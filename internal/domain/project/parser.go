package project

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	// headerLines is the number of leading header/rule lines skipped
	// unconditionally before any row is considered.
	headerLines = 2
	// delimiter separates fields within a row.
	delimiter = "|"
	// separatorMarker starts a table-rule row in the priority-line column.
	separatorMarker = "---"
)

// ParseResult holds the retained projects plus a count of rows dropped by
// the retention rules. Dropped rows are policy, not errors.
type ParseResult struct {
	Projects []Project
	Dropped  int
}

// Parser turns raw export lines into Projects using a versioned layout.
type Parser struct {
	layout Layout
	logger *slog.Logger
}

// NewParser creates a parser for the given layout.
func NewParser(layout Layout, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{layout: layout, logger: logger}
}

// Layout returns the layout the parser was built with.
func (p *Parser) Layout() Layout {
	return p.layout
}

// Parse reads the export line by line. The first two lines are headers and
// are skipped. A row is retained only if it contains the delimiter, splits
// into at least MinFields pieces, has non-empty priority line and study,
// and its priority line is not a separator rule. IDs are dense and 1-based
// over retained rows, in file order.
func (p *Parser) Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || !strings.Contains(line, delimiter) {
			continue
		}

		parts := strings.Split(line, delimiter)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < p.layout.MinFields {
			result.Dropped++
			continue
		}

		proj := Project{
			PriorityLine:          p.layout.pick(parts, FieldPriorityLine),
			Manager:               p.layout.pick(parts, FieldManager),
			Network:               p.layout.pick(parts, FieldNetwork),
			Study:                 p.layout.pick(parts, FieldStudy),
			Status:                p.layout.pick(parts, FieldStatus),
			DataSupport:           p.layout.pick(parts, FieldDataSupport),
			PrincipalInvestigator: p.layout.pick(parts, FieldPrincipalInvestigator),
			CoInvestigators:       p.layout.pick(parts, FieldCoInvestigators),
			NationalNetwork:       p.layout.pick(parts, FieldNationalNetwork),
		}

		if !retain(proj) {
			result.Dropped++
			continue
		}

		proj.ID = len(result.Projects) + 1
		result.Projects = append(result.Projects, proj)
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("reading export: %w", err)
	}

	if result.Dropped > 0 {
		p.logger.Debug("dropped malformed rows", "count", result.Dropped, "layout", p.layout.Version)
	}
	return result, nil
}

func retain(proj Project) bool {
	if proj.PriorityLine == "" || proj.Study == "" {
		return false
	}
	return !strings.HasPrefix(proj.PriorityLine, separatorMarker)
}
