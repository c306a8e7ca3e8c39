package tui

import (
	"strings"

	"github.com/MKhiriev/webcrm-console/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Applicazione: ")
	b.WriteString(models.AppName)
	b.WriteString("\nVersione: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nData: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nCommit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("INFORMAZIONI SUL PROGRAMMA", b.String(), "esc: indietro")
}
