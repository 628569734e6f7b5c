// Package ui is the Bubble Tea front end of deckview.
//
// Core pieces:
//   - AppModel: root model; owns the navigation controller and routes input
//   - SlideView: one slide, active or suppressed, with its entrance animation
//   - ControlsView: progress bar, counter and the prev/next buttons
//   - KeybindRegistry: key sequences mapped to actions, rendered as help
//   - Panel/Layout: screen regions, used for drawing and mouse hit-testing
//   - Overlay: modal views (the help screen) with a dismiss key
//
// Every input path ends in AppModel.navigate, which applies one nav.Command.
package ui
