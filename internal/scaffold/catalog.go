package scaffold

import "embed"

//go:embed templates
var templateFS embed.FS

// OverwritePolicy governs what happens to an existing file at a FileSpec's
// target path on each run.
type OverwritePolicy int

const (
	// AlwaysWrite replaces any existing file. Used for everything that
	// defines the generator's baseline: config, pages, routing, services.
	AlwaysWrite OverwritePolicy = iota

	// WriteIfAbsent writes only when no file exists at the path, so edits
	// made between runs survive. Unused by the baseline catalog but kept
	// as a policy primitive.
	WriteIfAbsent

	// DeleteIfPresent removes the file if it exists; absence is success.
	DeleteIfPresent
)

// FileSpec describes one synthesized file: where it goes, which embedded
// template renders it, and its overwrite policy. Source is empty for
// DeleteIfPresent entries.
type FileSpec struct {
	RelPath string
	Source  string
	Policy  OverwritePolicy
}

// Dirs returns the ordered directory set created before any file is
// written. Creating an existing directory is a no-op. The tests directory
// is deliberately left empty.
func Dirs() []string {
	return []string{
		"config",
		"hooks",
		"layouts",
		"pages",
		"pages/auth",
		"routes",
		"services",
		"components/ui",
		"tests",
	}
}

// Catalog returns the write entries of the template catalog, in the order
// they are synthesized. Dotfile targets use undotted template sources so
// the embedded FS picks them up.
func Catalog() []FileSpec {
	return []FileSpec{
		{RelPath: "config/index.js", Source: "react/config/index.js.tmpl", Policy: AlwaysWrite},
		{RelPath: "hooks/useAuth.js", Source: "react/hooks/useAuth.js.tmpl", Policy: AlwaysWrite},
		{RelPath: "hooks/useFetch.js", Source: "react/hooks/useFetch.js.tmpl", Policy: AlwaysWrite},
		{RelPath: "layouts/MainLayout.jsx", Source: "react/layouts/MainLayout.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "pages/Home.jsx", Source: "react/pages/Home.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "pages/NotFound.jsx", Source: "react/pages/NotFound.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "pages/auth/Login.jsx", Source: "react/pages/auth/Login.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "pages/auth/Register.jsx", Source: "react/pages/auth/Register.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "routes/index.jsx", Source: "react/routes/index.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "services/api.js", Source: "react/services/api.js.tmpl", Policy: AlwaysWrite},
		{RelPath: "services/auth.js", Source: "react/services/auth.js.tmpl", Policy: AlwaysWrite},
		{RelPath: "components/ui/Button.jsx", Source: "react/components/ui/Button.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "components/ui/Input.jsx", Source: "react/components/ui/Input.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "src/App.jsx", Source: "react/src/App.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "src/main.jsx", Source: "react/src/main.jsx.tmpl", Policy: AlwaysWrite},
		{RelPath: "src/index.css", Source: "react/src/index.css.tmpl", Policy: AlwaysWrite},
		{RelPath: "vite.config.js", Source: "react/vite.config.js.tmpl", Policy: AlwaysWrite},
		{RelPath: ".gitignore", Source: "react/gitignore.tmpl", Policy: AlwaysWrite},
		{RelPath: ".dockerignore", Source: "react/dockerignore.tmpl", Policy: AlwaysWrite},
		{RelPath: "Dockerfile", Source: "react/Dockerfile.tmpl", Policy: AlwaysWrite},
		{RelPath: "README.md", Source: "react/README.md.tmpl", Policy: AlwaysWrite},
	}
}

// Cleanups returns the DeleteIfPresent entries: default bootstrapper assets
// that are not part of this template's baseline. Their removal is best
// effort; a failure must not abort the run.
func Cleanups() []FileSpec {
	return []FileSpec{
		{RelPath: "src/App.css", Policy: DeleteIfPresent},
	}
}
