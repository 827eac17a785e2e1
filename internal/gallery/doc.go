package gallery

// Package gallery owns the view state of the generation flow: the form's
// in-flight flag, the current preview wallpaper, and the gallery collection
// loaded from the backend. The UI reads state through accessors and is
// notified of changes via a single update callback; all mutation happens
// here, behind one mutex.
