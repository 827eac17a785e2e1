package platform

// Package platform contains OS/platform integration glue: filesystem
// helpers, the default save location, and OS open/reveal for saved
// wallpaper files.
