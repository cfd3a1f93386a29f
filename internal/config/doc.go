// Package config loads and validates quill.toml configuration files.
// Configuration is resolved by walking up from the working directory,
// so a project-level quill.toml applies anywhere inside the project.
package config
