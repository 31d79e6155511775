package status

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ietsi/tablero/internal/domain/project"
)

// ErrUnknownStrategy reports a strategy name outside the known set.
var ErrUnknownStrategy = errors.New("unknown kanban strategy")

// Strategy selects how records are grouped into kanban columns.
type Strategy string

const (
	// StrategyExact groups by the literal distinct status values. Every
	// record lands in exactly one column; this is the default.
	StrategyExact Strategy = "exact"
	// StrategyCatalog groups by substring containment against a fixed
	// catalog of known statuses. Kept for parity with older exports; a
	// record matching no catalog entry is dropped from the board and
	// containment order decides multi-matches. Prefer StrategyExact.
	StrategyCatalog Strategy = "catalog"
)

// StrategyByName resolves a strategy from its configured name. The empty
// string maps to StrategyExact.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", string(StrategyExact):
		return StrategyExact, nil
	case string(StrategyCatalog):
		return StrategyCatalog, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Column is one kanban column: a status, its display color, and the
// projects grouped under it.
type Column struct {
	Status   string            `json:"status"`
	Color    string            `json:"color"`
	Projects []project.Project `json:"projects"`
}

// Board is the full kanban view.
type Board struct {
	Strategy Strategy `json:"strategy"`
	Columns  []Column `json:"columns"`
}

// ColorRule pairs a set of lowercase keywords with a color. Rules are
// evaluated top to bottom; the first rule with any keyword contained in
// the status claims it.
type ColorRule struct {
	Keywords []string `yaml:"keywords"`
	Color    string   `yaml:"color"`
}

// defaultColor is used when no rule matches.
const defaultColor = "#E6E6FA"

// DefaultColorRules reproduces the canonical color mapping. Order matters:
// e.g. "aprobado por comité" must hit the approval rule before the catch-all.
func DefaultColorRules() []ColorRule {
	return []ColorRule{
		{Keywords: []string{"elaboración", "elaboracion"}, Color: "#FFE4B5"},
		{Keywords: []string{"aprobado", "comité"}, Color: "#98FB98"},
		{Keywords: []string{"ejecución", "ejecucion"}, Color: "#90EE90"},
		{Keywords: []string{"completo", "rri"}, Color: "#87CEEB"},
		{Keywords: []string{"autorizacion", "gerencia"}, Color: "#FFB6C1"},
		{Keywords: []string{"validacion"}, Color: "#DDA0DD"},
		{Keywords: []string{"espera", "respuesta"}, Color: "#F0E68C"},
		{Keywords: []string{"manuscrito"}, Color: "#DDA0DD"},
	}
}

// catalog is the vocabulary the legacy containment strategy matches against.
var catalog = []string{
	"En Elaboración",
	"Enviado al Comité de Ética",
	"Aprobado por Comité de Ética",
	"En Ejecución",
	"Ejecución",
	"Validación",
	"En Validación",
	"Pendiente de Autorización",
	"Autorización de Gerencia",
	"En Espera de Respuesta",
	"Reporte de Resultado",
	"RRI 1 Completo",
	"RRI completo",
	"Completo",
	"Manuscrito",
}

// ColorFor resolves the display color of a status via the ordered rules.
func ColorFor(status string, rules []ColorRule) string {
	lower := strings.ToLower(status)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Color
			}
		}
	}
	return defaultColor
}

// BuildBoard groups projects into kanban columns. Column order is the
// first-seen order of statuses, which keeps the board deterministic for a
// given base set.
func BuildBoard(projects []project.Project, strategy Strategy, rules []ColorRule) Board {
	if len(rules) == 0 {
		rules = DefaultColorRules()
	}
	switch strategy {
	case StrategyCatalog:
		return buildCatalogBoard(projects, rules)
	default:
		return buildExactBoard(projects, rules)
	}
}

func buildExactBoard(projects []project.Project, rules []ColorRule) Board {
	index := make(map[string]int)
	board := Board{Strategy: StrategyExact}
	for _, proj := range projects {
		i, ok := index[proj.Status]
		if !ok {
			i = len(board.Columns)
			index[proj.Status] = i
			board.Columns = append(board.Columns, Column{
				Status: proj.Status,
				Color:  ColorFor(proj.Status, rules),
			})
		}
		board.Columns[i].Projects = append(board.Columns[i].Projects, proj)
	}
	return board
}

func buildCatalogBoard(projects []project.Project, rules []ColorRule) Board {
	index := make(map[string]int)
	board := Board{Strategy: StrategyCatalog}
	for _, proj := range projects {
		entry, ok := catalogMatch(proj.Status)
		if !ok {
			continue
		}
		i, seen := index[entry]
		if !seen {
			i = len(board.Columns)
			index[entry] = i
			board.Columns = append(board.Columns, Column{
				Status: entry,
				Color:  ColorFor(entry, rules),
			})
		}
		board.Columns[i].Projects = append(board.Columns[i].Projects, proj)
	}
	return board
}

// catalogMatch returns the first catalog entry contained in the status,
// case-insensitively. First match wins; later entries never reclaim.
func catalogMatch(status string) (string, bool) {
	lower := strings.ToLower(status)
	for _, entry := range catalog {
		if strings.Contains(lower, strings.ToLower(entry)) {
			return entry, true
		}
	}
	return "", false
}
