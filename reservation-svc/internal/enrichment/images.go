package enrichment

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf16"
)

// ProbeTimeout bounds a single image availability check.
const ProbeTimeout = 5 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var restaurantImages = []string{
	"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1559925393-8be0ec4767c8?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1498654896293-37aacf113fd9?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1544025162-d76694265947?w=400&h=300&fit=crop",
}

var menuImages = map[string][]string{
	"pizza": {
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1513104890138-7c749659a591?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1571407982463-2e8be81a37b5?w=300&h=200&fit=crop",
	},
	"pasta": {
		"https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1563379091339-03246963d29a?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1598866594230-a7c12756260f?w=300&h=200&fit=crop",
	},
	"dessert": {
		"https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1587668178277-295251f900ce?w=300&h=200&fit=crop",
	},
	"main": {
		"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=300&h=200&fit=crop",
	},
	"appetizer": {
		"https://images.unsplash.com/photo-1541014741259-de529411b96a?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1608039755401-742074f0548d?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1560717789-0ac7c58ac90a?w=300&h=200&fit=crop",
	},
	"soup": {
		"https://images.unsplash.com/photo-1547592180-85f173990554?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1588566565463-180a5b2090d3?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1604909052743-94e838986d24?w=300&h=200&fit=crop",
	},
	"sushi": {
		"https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1563612648-6e5b0c532da0?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1611143669185-af224c5e3252?w=300&h=200&fit=crop",
	},
	"sashimi": {
		"https://images.unsplash.com/photo-1611143669185-af224c5e3252?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1563612648-6e5b0c532da0?w=300&h=200&fit=crop",
	},
	"burger": {
		"https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1550547660-d9450f859349?w=300&h=200&fit=crop",
	},
	"rice": {
		"https://images.unsplash.com/photo-1512058564366-18510be2db19?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1596797038530-2c107229654b?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=300&h=200&fit=crop",
	},
	"bread": {
		"https://images.unsplash.com/photo-1509440159596-0249088772ff?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1556471013-f5133ce13fb3?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1587248062489-deb5ad3e1aa4?w=300&h=200&fit=crop",
	},
	"side": {
		"https://images.unsplash.com/photo-1518013431117-eb1465fa5752?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1623206937538-54b54b48bd8b?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1608890003011-aae80373fdac?w=300&h=200&fit=crop",
	},
	"beverage": {
		"https://images.unsplash.com/photo-1544145945-f90425340c7e?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1571091655789-405eb7a3a3a8?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1570831739435-6601aa3fa584?w=300&h=200&fit=crop",
	},
	"breakfast": {
		"https://images.unsplash.com/photo-1482049016688-2d3e1b311543?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?w=300&h=200&fit=crop",
		"https://images.unsplash.com/photo-1526081347037-9ad53d2b43db?w=300&h=200&fit=crop",
	},
}

var categoryAliases = map[string]string{
	"entree":    "main",
	"entrée":    "main",
	"mains":     "main",
	"starters":  "appetizer",
	"app":       "appetizer",
	"apps":      "appetizer",
	"drinks":    "beverage",
	"drink":     "beverage",
	"beverages": "beverage",
	"sides":     "side",
	"desserts":  "dessert",
	"sweet":     "dessert",
	"sweets":    "dessert",
}

var fallbackImages = []string{
	"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=300&h=200&fit=crop",
	"https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=300&h=200&fit=crop",
	"https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=300&h=200&fit=crop",
	"https://images.unsplash.com/photo-1482049016688-2d3e1b311543?w=300&h=200&fit=crop",
	"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=200&fit=crop",
}

// DefaultImage is used when every candidate image fails to load.
func DefaultImage() string {
	return fallbackImages[0]
}

// ImageIndex maps seed onto [0, n) with a 32-bit rolling hash over its
// UTF-16 code units, so the same seed always picks the same image.
func ImageIndex(seed string, n int) int {
	if n <= 0 {
		return 0
	}
	var h int32
	for _, c := range utf16.Encode([]rune(seed)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}

// MenuCollection resolves a category name to its image set, following
// aliases and falling back to main courses.
func MenuCollection(category string) []string {
	c := strings.ToLower(category)
	if images, ok := menuImages[c]; ok {
		return images
	}
	if alias, ok := categoryAliases[c]; ok {
		return menuImages[alias]
	}
	return menuImages["main"]
}

type ImagePicker struct {
	Client  HTTPClient
	Timeout time.Duration
}

func NewImagePicker(client HTTPClient) *ImagePicker {
	if client == nil {
		client = http.DefaultClient
	}
	return &ImagePicker{Client: client, Timeout: ProbeTimeout}
}

// Probe reports whether url answers a HEAD request with a 2xx status
// before the probe timeout.
func (p *ImagePicker) Probe(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Printf("Warning: bad image url %s: %v", url, err)
		return false
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		log.Printf("Warning: image load error %s: %v", url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Warning: image load error %s: status %d", url, resp.StatusCode)
		return false
	}
	return true
}

// RestaurantImage picks a restaurant photo for seed, or the default image
// when it does not load.
func (p *ImagePicker) RestaurantImage(ctx context.Context, seed string) string {
	selected := restaurantImages[ImageIndex(seed, len(restaurantImages))]
	if p.Probe(ctx, selected) {
		return selected
	}
	log.Printf("Warning: restaurant image failed to load: %s, using fallback", selected)
	return DefaultImage()
}

// MenuItemImage picks a dish photo from its category collection, then a
// seeded fallback, then the default image.
func (p *ImagePicker) MenuItemImage(ctx context.Context, name, category string) string {
	images := MenuCollection(category)
	selected := images[ImageIndex(name+category, len(images))]
	if p.Probe(ctx, selected) {
		return selected
	}

	fallback := fallbackImages[ImageIndex(name, len(fallbackImages))]
	if p.Probe(ctx, fallback) {
		return fallback
	}
	log.Printf("Warning: no image loaded for %s, using default", name)
	return DefaultImage()
}
