package output

// StatusSetter reports the currently displayed activity to the presentation
// layer.
type StatusSetter interface {
	SetActivity(name string) error
}
