// Package render prints views, detections and the catalog as plain text.
package render

import (
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/jsphweid/fretwise/circle"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/degree"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	Template *template.Template
}

// New returns a renderer using the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf(`could not create templates: %v`, err)
	}
	return &Renderer{Template: tmpl}, nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.Template.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf(`could not execute template "%v": %w`, name, err)
	}
	return nil
}

func (r *Renderer) Notes(w io.Writer, title string, notes []string) error {
	return r.execute(w, "notes", struct {
		Title string
		Notes []string
	}{title, notes})
}

func (r *Renderer) Degrees(w io.Writer, degrees []degree.Info) error {
	return r.execute(w, "degrees", struct{ Degrees []degree.Info }{degrees})
}

// Circle lists the positions clockwise from C, marking the tonic with *
// and other active notes with +, followed by the arcs.
func (r *Renderer) Circle(w io.Writer, positions []circle.Position, arcs []circle.Arc) error {
	return r.execute(w, "circle", struct {
		Circle []circle.Position
		Arcs   []circle.Arc
	}{positions, arcs})
}

// Fretboard draws the highest string on top. When some cells are active
// only those are named, the tonic with a trailing *; otherwise every cell
// is named.
func (r *Renderer) Fretboard(w io.Writer, tuning fretboard.Tuning, cells []view.FretNote) error {
	return r.execute(w, "fretboard", newBoard(tuning, cells))
}

func (r *Renderer) View(w io.Writer, d view.Display) error {
	return r.execute(w, "view", struct {
		view.Display
		TuningNames []string
		Board       board
	}{d, tuningNames(d.Tuning), newBoard(d.Tuning, d.Fretboard)})
}

func (r *Renderer) Detection(w io.Writer, res model.DetectResponse) error {
	return r.execute(w, "detect", res)
}

func (r *Renderer) Catalog(w io.Writer, c model.Catalog) error {
	return r.execute(w, "catalog", c)
}

type boardRow struct {
	Label string
	Cells []string
}

type board struct {
	Frets []int
	Rows  []boardRow
}

func newBoard(tuning fretboard.Tuning, cells []view.FretNote) board {
	b := board{Frets: make([]int, constants.FretCount+1)}
	for i := range b.Frets {
		b.Frets[i] = i
	}

	marked := false
	for _, c := range cells {
		if c.Active {
			marked = true
			break
		}
	}

	rows := make([][]string, len(tuning))
	for _, c := range cells {
		s, f := c.StringIndex, c.Fret
		if s < 0 || s >= len(rows) || f < 0 || f > constants.FretCount {
			continue
		}
		if rows[s] == nil {
			rows[s] = make([]string, constants.FretCount+1)
		}
		rows[s][f] = cellText(c, marked)
	}

	for s := len(tuning) - 1; s >= 0; s-- {
		row := boardRow{Label: tuning[s].String(), Cells: rows[s]}
		if row.Cells == nil {
			row.Cells = []string{"x"}
		}
		b.Rows = append(b.Rows, row)
	}
	return b
}

func cellText(c view.FretNote, marked bool) string {
	switch {
	case !marked:
		return c.Note.Note
	case !c.Active:
		return "-"
	case c.Tonic:
		return c.Note.Note + "*"
	}
	return c.Note.Note
}

func tuningNames(t fretboard.Tuning) []string {
	names := make([]string, 0, len(t))
	for _, s := range t {
		names = append(names, s.String())
	}
	return names
}
