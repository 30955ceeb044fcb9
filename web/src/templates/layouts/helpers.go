package layouts

const siteName = "Čisto d.o.o."

// CalculateTitle appends the business name to a page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " | " + siteName
	}
	return siteName
}
