package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrAssetNotFound is returned when a texture ID has not been added.
var ErrAssetNotFound = errors.New("asset not found")

// AssetManager owns every texture used by the running level.
// Textures are keyed by a string ID and stay valid until ClearAssets is called.
//
// The AssetManager implements the texture lookup consumed by systems.RenderSystem.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load all textures from the main
// goroutine before the game loop starts.
//
// Usage:
//
//	am := NewAssetManager()
//	if err := am.LoadAssetConfig("assets/assets.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := am.LoadAll(); err != nil {
//	    log.Fatal(err)
//	}
//	img, err := am.GetTexture("tank-image")
type AssetManager struct {
	files    fs.FS                    // Source of image and manifest files; nil means the OS filesystem
	textures map[string]*ebiten.Image // Texture ID -> Image
	paths    map[string]string        // Texture ID -> file path it was loaded from

	// YAML asset manifest
	config *AssetConfig
}

// NewAssetManager creates an AssetManager with no textures that reads files from disk.
func NewAssetManager() *AssetManager {
	return NewAssetManagerFS(nil)
}

// NewAssetManagerFS creates an AssetManager that reads files from fsys,
// typically the embedded assets (see package embedded).
func NewAssetManagerFS(fsys fs.FS) *AssetManager {
	log.Printf("[AssetManager] Asset manager created")
	return &AssetManager{
		files:    fsys,
		textures: make(map[string]*ebiten.Image),
		paths:    make(map[string]string),
	}
}

// AddTexture loads the image at filePath and stores it under assetID.
// Adding an ID that already exists replaces the previous texture.
//
// Returns:
//   - An error if the file cannot be opened or decoded.
func (am *AssetManager) AddTexture(assetID, filePath string) error {
	img, err := LoadImage(am.files, filePath)
	if err != nil {
		return fmt.Errorf("add texture %s: %w", assetID, err)
	}
	am.SetTexture(assetID, img)
	am.paths[assetID] = filePath
	log.Printf("[AssetManager] New texture added with ID = %s", assetID)
	return nil
}

// SetTexture stores an already created image under assetID.
// Used for generated textures and in tests.
func (am *AssetManager) SetTexture(assetID string, img *ebiten.Image) {
	if old, exists := am.textures[assetID]; exists && old != img {
		old.Deallocate()
	}
	am.textures[assetID] = img
	delete(am.paths, assetID)
}

// GetTexture returns the texture stored under assetID.
//
// Returns:
//   - ErrAssetNotFound (wrapped) if the ID has never been added.
func (am *AssetManager) GetTexture(assetID string) (*ebiten.Image, error) {
	img, exists := am.textures[assetID]
	if !exists {
		return nil, fmt.Errorf("texture %s: %w", assetID, ErrAssetNotFound)
	}
	return img, nil
}

// HasTexture reports whether assetID has been added.
func (am *AssetManager) HasTexture(assetID string) bool {
	_, exists := am.textures[assetID]
	return exists
}

// TexturePath returns the file a texture was loaded from, or "" for generated textures.
func (am *AssetManager) TexturePath(assetID string) string {
	return am.paths[assetID]
}

// TextureIDs returns the IDs of all stored textures in sorted order.
func (am *AssetManager) TextureIDs() []string {
	ids := make([]string, 0, len(am.textures))
	for id := range am.textures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of stored textures.
func (am *AssetManager) Len() int {
	return len(am.textures)
}

// ClearAssets releases every texture. Previously returned images must not be used afterwards.
func (am *AssetManager) ClearAssets() {
	for _, img := range am.textures {
		img.Deallocate()
	}
	am.textures = make(map[string]*ebiten.Image)
	am.paths = make(map[string]string)
	log.Printf("[AssetManager] All textures cleared")
}

// LoadAssetConfig reads and parses the YAML asset manifest.
// Textures are not loaded until LoadAll is called.
//
// Returns:
//   - An error if the file cannot be read or parsed, or if it declares an ID twice
func (am *AssetManager) LoadAssetConfig(configPath string) error {
	data, err := ReadFile(am.files, configPath)
	if err != nil {
		return fmt.Errorf("failed to read asset config %s: %w", configPath, err)
	}

	var config AssetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse asset config %s: %w", configPath, err)
	}

	seen := make(map[string]bool, len(config.Textures))
	for _, tex := range config.Textures {
		if tex.ID == "" {
			return fmt.Errorf("asset config %s: texture with empty id (path %q)", configPath, tex.Path)
		}
		if seen[tex.ID] {
			return fmt.Errorf("asset config %s: duplicate texture id %s", configPath, tex.ID)
		}
		seen[tex.ID] = true
	}

	am.config = &config
	return nil
}

// LoadAll adds every texture declared in the loaded manifest.
//
// Returns:
//   - An error if no manifest is loaded or any texture fails to load
func (am *AssetManager) LoadAll() error {
	if am.config == nil {
		return fmt.Errorf("asset config not loaded - call LoadAssetConfig first")
	}

	for _, tex := range am.config.Textures {
		fullPath := buildFullPath(am.config.BasePath, tex.Path)
		if filepath.Ext(fullPath) == "" {
			fullPath += ".png"
		}
		if err := am.AddTexture(tex.ID, fullPath); err != nil {
			return err
		}
	}
	return nil
}

// LoadImage decodes an image file into an ebiten.Image.
// Supported formats: PNG and JPEG. A nil fsys reads from disk.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	file, err := OpenFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return ebiten.NewImageFromImage(img), nil
}
