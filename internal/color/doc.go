// Package color holds the palette and shared lipgloss styles of the swarm
// terminal interface.
//
// Colors are adaptive: each one carries a light and a dark variant and
// lipgloss picks one from the detected terminal background. Initialize
// overrides the detection, which the TUI does when the user forces a theme.
//
// # Semantic colors
//
//   - Primary: focused borders and titles
//   - Success: opened sources
//   - Warning: sources being listed
//   - Error: broken sources, nearest entries missing from the tree
//   - Info: channels and status messages
//   - Subtle: placeholder rows, help text
//
// # Usage Example
//
//	fmt.Println(color.ErrorStyle.Render("✗ source unreachable"))
package color
