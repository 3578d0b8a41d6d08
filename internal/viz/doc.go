// Package viz renders the experiments in the terminal: a braille-dot
// canvas for the apparatus, lipgloss-styled readouts, and a bubbletea
// model that steps the simulation at 60 fps.
package viz
