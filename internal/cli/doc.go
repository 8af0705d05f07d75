// Package cli provides the terminal user interface for MacroMind.
//
// The package uses [Bubbletea] for the event loop, [Bubbles] for inputs,
// spinners, progress bars and key help, and [Lipgloss] for styling. The
// root model is [App]; it follows the Model-View-Update architecture and
// never blocks: AI estimates run as a tea.Cmd and come back as a message
// carrying the day that was selected when the request was made.
//
// # Screens
//
//   - Main: date navigator, daily dashboard, the day's meals and the
//     trailing week chart
//   - Add food: AI, manual and favorites modes
//   - Goals: edit the four daily targets
//   - Confirm: yes/no prompt before clearing a day
//
// # Styling
//
// [NewStyles] builds a dark or light palette. The theme toggles at runtime
// and is persisted by the tracker.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Bubbles]: https://github.com/charmbracelet/bubbles
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
