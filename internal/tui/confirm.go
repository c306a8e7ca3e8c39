package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Eliminare \"" + m.message + "\"?\n\n"
	content += "s sì    n no"
	return overlayBoxStyle.Render(content)
}
