package shadematcher

import (
	"sort"
	"strings"
)

// Shade is a named color variant of a product, with any locally resolved
// imagery attached.
type Shade struct {
	// The display name of the shade, as scraped
	Name string `json:"name"`

	// The primary image path for the shade, when local assets exist
	Image string `json:"image,omitempty"`

	// Any further image paths from the same asset folder
	Images []string `json:"images,omitempty"`
}

// FolderIndex maps an asset folder name to the image paths it contains.
type FolderIndex map[string][]string

// KeywordTable maps a category display name to the lowercase keyword
// substrings used as a fallback matcher for untagged products.
type KeywordTable map[string][]string

// CategoryProbe carries the product fields consulted by MatchCategory.
type CategoryProbe struct {
	Title       string
	Slug        string
	Description string
	Categories  []string
}

// MatchFolder finds the folder whose normalized name best matches the
// normalized shade name. Matches are attempted in three tiers, each
// scanned across the full folder list before the next is tried:
// exact equality, one form containing the other, and finally every word
// of the shade name appearing somewhere in the folder name. The last tier
// covers word-order and partial-qualification differences, such as shade
// "22 GENEVE" against folder "GENÈVE 22".
// A miss is a routine outcome and reported through the boolean.
func MatchFolder(shadeName string, folderNames []string) (string, bool) {
	probe := Normalize(shadeName)
	if probe == "" {
		return "", false
	}

	for _, folder := range folderNames {
		if Normalize(folder) == probe {
			return folder, true
		}
	}

	for _, folder := range folderNames {
		name := Normalize(folder)
		if name == "" {
			continue
		}
		if strings.Contains(name, probe) || strings.Contains(probe, name) {
			return folder, true
		}
	}

	words := strings.Fields(probe)
	for _, folder := range folderNames {
		name := Normalize(folder)
		if name == "" {
			continue
		}
		matched := true
		for _, word := range words {
			if !strings.Contains(name, word) {
				matched = false
				break
			}
		}
		if matched {
			return folder, true
		}
	}

	return "", false
}

// ResolveShadeImages attaches local imagery to each shade that has a
// matching folder in the index, keeping at most maxImagesPerShade paths
// sorted by filename. Shades with no matching folder are dropped, so that
// only shades with confirmed local photography reach the caller. Input
// order is preserved for the survivors. Folders are scanned in sorted name
// order to keep matching deterministic across runs.
func ResolveShadeImages(shades []Shade, index FolderIndex, maxImagesPerShade int) []Shade {
	folders := make([]string, 0, len(index))
	for folder := range index {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	var out []Shade
	for _, shade := range shades {
		folder, found := MatchFolder(shade.Name, folders)
		if !found {
			continue
		}
		paths := index[folder]
		if len(paths) == 0 {
			continue
		}

		paths = append([]string(nil), paths...)
		sort.Strings(paths)
		if maxImagesPerShade > 0 && len(paths) > maxImagesPerShade {
			paths = paths[:maxImagesPerShade]
		}

		shade.Image = paths[0]
		shade.Images = paths
		out = append(out, shade)
	}
	return out
}

// MatchCategory reports whether a product belongs to the target category.
// Products carrying explicit category tags are matched on those tags alone,
// with no keyword fallback even when every tag misses. Untagged products
// fall back to keyword substring search over title, slug, and description.
// A target missing from the table is matched on its own lowercased name.
func MatchCategory(product CategoryProbe, target string, keywords KeywordTable) bool {
	if len(product.Categories) > 0 {
		for _, tag := range product.Categories {
			if strings.EqualFold(tag, target) {
				return true
			}
		}
		return false
	}

	probes := keywords[target]
	if len(probes) == 0 {
		probes = []string{strings.ToLower(target)}
	}

	haystack := strings.ToLower(product.Title + " " + product.Slug + " " + product.Description)
	for _, keyword := range probes {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
