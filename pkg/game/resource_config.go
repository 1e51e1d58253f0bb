package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	init:
//	  images:
//	    - id: IMAGE_MENU
//	      path: images/menu
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_ROCK", "IMAGE_BACKGROUND1")
//   - Path: Relative path from base_path to the image file (extension optional, defaults to .png)
//
// Example:
//
//	- id: IMAGE_ALIEN
//	  path: images/alien.png
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/background1.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/background1.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	// 相对路径可能以 / 开头
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
