// internal/app/view.go
package app

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	return m.Screen.View() + m.Mode.ModeLine()
}
