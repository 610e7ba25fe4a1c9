// Package viewer is the sample execution context hosted by the terminal UI:
// a Scene of display settings and the builders that describe its toolbar.
package viewer

import "fmt"

// Quality levels accepted by Scene.SetQuality.
const (
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"
)

// ModelType is a category of loaded model.
type ModelType string

const (
	ModelCAD         ModelType = "cad"
	ModelPointCloud  ModelType = "pointcloud"
	ModelImage360    ModelType = "image360"
	ModelAnnotations ModelType = "annotations"
)

var modelColors = map[ModelType]string{
	ModelCAD:         "#4f8fea",
	ModelPointCloud:  "#e0a030",
	ModelImage360:    "#5fbf6a",
	ModelAnnotations: "#c05bc9",
}

// Defaults restored by Reset.
const (
	DefaultPointSize   = 2.0
	DefaultPointBudget = 3.0
	DefaultQuality     = QualityMedium
)

// Scene is the state the toolbar commands read and write.
type Scene struct {
	PointSize   float64
	PointBudget float64
	Quality     string
	ShowGrid    bool
	Clipping    bool
	Measuring   bool
	Measured    int
	Note        string
	FitCount    int

	models []ModelType
	hidden map[ModelType]bool
}

// NewScene returns a scene with the given model types loaded and display
// defaults applied.
func NewScene(models ...ModelType) *Scene {
	if len(models) == 0 {
		models = []ModelType{ModelCAD, ModelPointCloud, ModelImage360, ModelAnnotations}
	}
	s := &Scene{models: append([]ModelType(nil), models...), hidden: map[ModelType]bool{}}
	s.Reset()
	return s
}

// Models lists the loaded model types in load order.
func (s *Scene) Models() []ModelType {
	return append([]ModelType(nil), s.models...)
}

// ModelVisible reports whether models of type t are shown.
func (s *Scene) ModelVisible(t ModelType) bool { return !s.hidden[t] }

// SetModelVisible shows or hides models of type t.
func (s *Scene) SetModelVisible(t ModelType, v bool) { s.hidden[t] = !v }

// AnyModelVisible reports whether at least one loaded type is shown.
func (s *Scene) AnyModelVisible() bool {
	for _, t := range s.models {
		if s.ModelVisible(t) {
			return true
		}
	}
	return false
}

// SetQuality validates and applies a quality level.
func (s *Scene) SetQuality(q string) error {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		s.Quality = q
		return nil
	default:
		return fmt.Errorf("unknown quality %q", q)
	}
}

// FitToView records a camera fit. It reports false when nothing is visible.
func (s *Scene) FitToView() bool {
	if !s.AnyModelVisible() {
		return false
	}
	s.FitCount++
	return true
}

// Reset restores the display defaults. It reports whether anything changed.
func (s *Scene) Reset() bool {
	changed := s.PointSize != DefaultPointSize ||
		s.PointBudget != DefaultPointBudget ||
		s.Quality != DefaultQuality ||
		s.ShowGrid || s.Clipping || s.Note != ""
	s.PointSize = DefaultPointSize
	s.PointBudget = DefaultPointBudget
	s.Quality = DefaultQuality
	s.ShowGrid = false
	s.Clipping = false
	s.Note = ""
	return changed
}

func sceneOf(ctx any) *Scene {
	s, _ := ctx.(*Scene)
	return s
}
