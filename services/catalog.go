package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tobybase/Meal-order-app/models"
)

// ErrCatalogUnavailable marks any failure to load the menu from a remote
// source. The UI reports it inline and offers a manual retry; nothing
// retries automatically.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogProvider supplies the immutable menu. Load is idempotent: repeated
// calls return the same catalog.
type CatalogProvider interface {
	Load(ctx context.Context) ([]models.MenuItem, error)
}

// StaticCatalog serves the built-in dinner menu. It never fails.
type StaticCatalog struct{}

func (StaticCatalog) Load(ctx context.Context) ([]models.MenuItem, error) {
	return staticMenu(), nil
}

// HTTPCatalog fetches the menu from a remote endpoint returning a JSON
// array of menu items. Items arriving without an ID are numbered by
// position, same as the static menu.
type HTTPCatalog struct {
	URL    string
	Client *http.Client
}

func NewHTTPCatalog(url string) *HTTPCatalog {
	return &HTTPCatalog{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPCatalog) Load(ctx context.Context) ([]models.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrCatalogUnavailable, resp.Status)
	}

	var items []models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCatalogUnavailable, err)
	}
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = i + 1
		}
		if items[i].Price.IsNegative() {
			return nil, fmt.Errorf("%w: item %q has negative price", ErrCatalogUnavailable, items[i].Name)
		}
		if !models.ValidCategory(items[i].Category) {
			return nil, fmt.Errorf("%w: item %q has unknown category %q", ErrCatalogUnavailable, items[i].Name, items[i].Category)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty menu", ErrCatalogUnavailable)
	}
	return items, nil
}

// NewCatalog picks the remote provider when a URL is configured, the
// built-in menu otherwise.
func NewCatalog(catalogURL string) CatalogProvider {
	if catalogURL != "" {
		return NewHTTPCatalog(catalogURL)
	}
	return StaticCatalog{}
}

type menuEntry struct {
	name        string
	description string
	price       int64
	category    string
}

// staticMenu builds the fixed dinner menu. IDs are assigned by position,
// starting at 1.
func staticMenu() []models.MenuItem {
	entries := []menuEntry{
		{"TEA SOUR", "茶香酸酒", 300, models.CategoryDrink},
		{"TEA SPRITZ", "茶香氣泡", 320, models.CategoryDrink},
		{"FRUIT SOUR", "水果酸酒", 280, models.CategoryDrink},
		{"H&W ICE TEA", "H&W 冰茶", 380, models.CategoryDrink},
		{"STRAWBERRY MILKSHAKE", "草莓奶昔", 360, models.CategoryDrink},
		{"GIN TONIC", "琴通寧", 300, models.CategoryDrink},
		{"MOSCOW MULE", "莫斯科騾子", 300, models.CategoryDrink},
		{"WHISKEY SOUR", "威士忌酸酒", 300, models.CategoryDrink},
		{"LONG ISLAND", "長島冰茶", 360, models.CategoryDrink},
		{"CRAFT BEER", "精釀啤酒", 280, models.CategoryDrink},

		{"CAESAR CHICKEN SALAD", "凱薩雞肉沙拉", 320, models.CategoryAppetizer},
		{"JAPANESE DRESSING DUCK SALAD", "和風芥末煙燻鴨肉沙拉", 360, models.CategoryAppetizer},
		{"SMOKED SALMON SALAD", "橄欖油醋冷燻鮭魚沙拉", 360, models.CategoryAppetizer},
		{"SPANISH GARLIC SHRIMP", "西班牙橄欖油蒜味蝦", 260, models.CategoryAppetizer},
		{"CA POUTINE", "加拿大肉汁起司薯條", 320, models.CategoryAppetizer},
		{"ZUCCHINI W APPLE & MULLET ROE", "櫛瓜佐蘋果烏魚子", 220, models.CategoryAppetizer},

		{"CRISPY FRIED YAM W MENTAIKO", "酥炸山藥佐明太子", 220, models.CategoryFriedSnacks},
		{"H&W DEEP FRIED PLATTER", "H&W炸物拼盤(小)", 320, models.CategoryFriedSnacks},
		{"TRUFFLE W MAYONNAISE FRIES", "黑松露蛋黃醬薯條", 300, models.CategoryFriedSnacks},
		{"DEEP FRIED ONION RINGS", "酥炸洋蔥圈", 240, models.CategoryFriedSnacks},
		{"KARAAGE JAPANESE CHICKEN", "酥炸唐揚雞塊", 300, models.CategoryFriedSnacks},
		{"SPICY CHICKEN WINGS", "辣雞翅", 240, models.CategoryFriedSnacks},

		{"FRIED RICE W SCALLOP & TRUFFLE", "金黃干貝松露炒飯", 340, models.CategoryMainCourse},
		{"BEEF BOURGUIGNON RISOTTO", "義式紅酒燉牛肉飯", 340, models.CategoryMainCourse},
		{"PESTO CHICKEN RISOTTO", "青醬脆皮雞腿燉飯", 360, models.CategoryMainCourse},
		{"GARLIC CLAMS SPAGHETTI", "蒜香白酒蛤蜊義大利麵", 340, models.CategoryMainCourse},
		{"MENTAIKO SMOKED SALMON SPAGHETTI", "明太子燻鮭魚義大利麵", 360, models.CategoryMainCourse},
		{"ROASTED GERMAN PORK KNUCKLE", "德式烤豬腳佐酸菜培根", 420, models.CategoryMainCourse},
		{"SALMON FILET W HASSELBACK", "鮭魚菲力手風琴馬鈴薯", 430, models.CategoryMainCourse},
		{"TOMAHAWK PORK W HASSELBACK", "戰斧豬排手風琴馬鈴薯", 480, models.CategoryMainCourse},

		{"MIXED CHEESE PIZZA", "義式綜合起司披薩", 320, models.CategoryPizza},
		{"TRUFFLE AND MUSHROOM PIZZA", "黑松露蘑菇披薩", 340, models.CategoryPizza},
		{"BEEF PIZZA WITH ROCK SALT", "岩鹽蒜香牛肉披薩", 340, models.CategoryPizza},
		{"SMOKED SALMON W BABY LEAF", "燻鮭魚有機生菜披薩", 380, models.CategoryPizza},
		{"DUCK WITH GARLIC BOLT PIZZA", "台式蒜苗鴨肉披薩", 380, models.CategoryPizza},
		{"CARAMEL SEA SALT PIZZA W CHESTNUT", "焦糖海鹽栗子披薩", 340, models.CategoryPizza},
	}

	items := make([]models.MenuItem, len(entries))
	for i, e := range entries {
		items[i] = models.MenuItem{
			ID:          i + 1,
			Name:        e.name,
			Description: e.description,
			Price:       decimal.NewFromInt(e.price),
			Category:    e.category,
		}
	}
	return items
}
