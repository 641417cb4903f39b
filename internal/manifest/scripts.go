package manifest

// DesiredScripts is the fixed automation-script table the generator wants
// present in every scaffolded project. Entries are only added when the key
// is missing; a user's own command line always wins.
func DesiredScripts() map[string]string {
	return map[string]string{
		"dev":     "vite",
		"build":   "vite build",
		"preview": "vite preview",
		"lint":    "eslint .",
		"format":  "prettier --write .",
		"test":    "vitest run",
	}
}
