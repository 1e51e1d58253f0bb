package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game images.
// It resolves resource IDs declared in resources.yaml to files inside a file system
// and caches decoded images so each file is decoded only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS())
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	if err := rm.LoadResourceGroup("init"); err != nil {
//	    return err
//	}
//	img := rm.GetImageByID("IMAGE_ROCK")
type ResourceManager struct {
	fsys       fs.FS                    // Resource file system (embedded assets or fstest.MapFS in tests)
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The file system to read resources from. Paths are slash-separated
//     and relative to its root (e.g., "assets/images/rock.png").
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:        fsys,
		imageCache:  make(map[string]*ebiten.Image),
		resourceMap: make(map[string]string),
	}
}

// normalizePath 统一为 fs.FS 可接受的路径格式
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return path.Clean(p)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = normalizePath(p)

	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[normalizePath(p)]
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// It builds the resource ID -> path mapping used by LoadImageByID.
//
// Example:
//
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return fmt.Errorf("资源配置加载失败: %w", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, normalizePath(configPath))
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] 加载资源配置: %s (%d 个资源组, %d 个资源)",
		configPath, len(config.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_ROCK -> assets/images/rock.png
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)

			// 默认扩展名为 .png
			if path.Ext(fullPath) == "" {
				fullPath += ".png"
			}

			rm.resourceMap[img.ID] = fullPath
		}
	}
}

// LoadImageByID loads an image resource using its resource ID.
// The resource ID must be defined in the YAML configuration file.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	if rm.config == nil {
		return nil
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}

	return rm.GetImage(filePath)
}

// HasResource 返回资源 ID 是否在配置中声明
func (rm *ResourceManager) HasResource(resourceID string) bool {
	_, exists := rm.resourceMap[resourceID]
	return exists
}

// ResourceIDs 返回按字典序排列、带指定前缀的资源 ID
// 例如 ResourceIDs("IMAGE_BACKGROUND") 返回所有背景图
func (rm *ResourceManager) ResourceIDs(prefix string) []string {
	var ids []string
	for id := range rm.resourceMap {
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// LoadResourceGroup loads all images in a specified group.
//
// Example:
//
//	// Load all initial resources at game startup
//	if err := rm.LoadResourceGroup("init"); err != nil {
//	    return fmt.Errorf("failed to load init resources: %w", err)
//	}
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] 资源组 %s 加载完成 (%d 张图片)", groupName, len(group.Images))
	return nil
}
