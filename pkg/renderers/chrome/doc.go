// Package chrome drives a headless Chrome/Chromium session to rasterize
// substituted frame markup into PNG files. The session is a lazily created,
// serially reusable resource pinned to one frame size; discovery of a usable
// non-snap browser executable happens once per process behind the Locator
// interface.
package chrome
