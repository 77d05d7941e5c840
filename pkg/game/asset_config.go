package game

// AssetConfig represents the asset manifest loaded from YAML.
// It defines the structure of assets/assets.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	textures:
//	  - id: tank-image
//	    path: images/tank-panther-right.png
type AssetConfig struct {
	Version  string         `yaml:"version"`   // Manifest version
	BasePath string         `yaml:"base_path"` // Base path for all assets (e.g., "assets")
	Textures []TextureAsset `yaml:"textures"`  // Textures loaded by LoadAll, in order
}

// TextureAsset is a single texture definition.
//
// Fields:
//   - ID: Unique identifier the SpriteComponent refers to (e.g., "tilemap-image")
//   - Path: Relative path from base_path to the image file; ".png" is assumed when no extension is given
type TextureAsset struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath constructs the full file path for an asset.
// It combines the base path with the asset's relative path.
//
// Parameters:
//   - basePath: The base path from AssetConfig (e.g., "assets")
//   - relativePath: The asset's relative path (e.g., "images/tank-panther-right.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/tank-panther-right.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
