// Package seed carries the static fallback catalog and can push it into
// the database. The same list backs the in-memory catalog when the product
// table is empty or unreachable.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talipby/koroglu-site/internal/domain"
)

// Fallback returns the built-in wholesale catalog.
func Fallback() []domain.Product {
	return []domain.Product{
		{
			ID:             "seed-badem",
			Name:           "Badem İçi",
			Category:       "Kuruyemiş",
			PriceCents:     45000,
			WholesaleCents: 38000,
			Image:          "https://images.pexels.com/photos/1013420/pexels-photo-1013420.jpeg",
			Description:    "Çiğ badem içi, birinci kalite. Protein ve E vitamini deposu.",
			InStock:        true,
			MinOrder:       5,
			Unit:           "kg",
			Origin:         "Datça",
			NutritionInfo:  "100g: 579 kcal, 21g protein, 50g yağ",
		},
		{
			ID:             "seed-ceviz",
			Name:           "Ceviz İçi",
			Category:       "Kuruyemiş",
			PriceCents:     52000,
			WholesaleCents: 42000,
			Image:          "https://images.pexels.com/photos/38392/walnut-nut-brown-38392.jpeg",
			Description:    "Taze ceviz içi, kelebek çıkarılmış. Omega-3 kaynağı.",
			InStock:        true,
			MinOrder:       3,
			Unit:           "kg",
			Origin:         "Kahramanmaraş",
			NutritionInfo:  "100g: 654 kcal, 15g protein, 65g yağ",
		},
		{
			ID:             "seed-fistik",
			Name:           "Antep Fıstığı",
			Category:       "Kuruyemiş",
			PriceCents:     65000,
			WholesaleCents: 55000,
			Image:          "https://images.pexels.com/photos/52521/pistachios-nuts-snack-52521.jpeg",
			Description:    "Kavrulmuş Antep fıstığı, boz iç oranı düşük.",
			InStock:        true,
			MinOrder:       3,
			Unit:           "kg",
			Origin:         "Gaziantep",
		},
		{
			ID:             "seed-findik",
			Name:           "Fındık İçi",
			Category:       "Kuruyemiş",
			PriceCents:     38000,
			WholesaleCents: 31000,
			Image:          "https://images.pexels.com/photos/1327838/pexels-photo-1327838.jpeg",
			Description:    "Giresun kalite fındık içi, kavrulmamış.",
			InStock:        true,
			MinOrder:       5,
			Unit:           "kg",
			Origin:         "Giresun",
		},
		{
			ID:             "seed-kayisi",
			Name:           "Kuru Kayısı",
			Category:       "Kuru Meyve",
			PriceCents:     22000,
			WholesaleCents: 18000,
			Image:          "https://images.pexels.com/photos/7194914/pexels-photo-7194914.jpeg",
			Description:    "Gün kurusu Malatya kayısısı, kükürtsüz.",
			InStock:        true,
			MinOrder:       5,
			Unit:           "kg",
			Origin:         "Malatya",
			NutritionInfo:  "100g: 241 kcal, 3.4g protein, lif deposu",
		},
		{
			ID:             "seed-incir",
			Name:           "Kuru İncir",
			Category:       "Kuru Meyve",
			PriceCents:     28000,
			WholesaleCents: 23000,
			Image:          "https://images.pexels.com/photos/6086061/pexels-photo-6086061.jpeg",
			Description:    "Aydın inciri, lerida boy. Doğal kurutulmuş.",
			InStock:        true,
			MinOrder:       4,
			Unit:           "kg",
			Origin:         "Aydın",
		},
		{
			ID:             "seed-uzum",
			Name:           "Kuru Üzüm",
			Category:       "Kuru Meyve",
			PriceCents:     9000,
			WholesaleCents: 7000,
			Image:          "https://images.pexels.com/photos/5945715/pexels-photo-5945715.jpeg",
			Description:    "Çekirdeksiz sultani üzüm, 9 numara.",
			InStock:        false,
			MinOrder:       10,
			Unit:           "kg",
			Origin:         "Manisa",
		},
		{
			ID:             "seed-leblebi",
			Name:           "Sarı Leblebi",
			Category:       "Çerez",
			PriceCents:     12000,
			WholesaleCents: 9500,
			Image:          "https://images.pexels.com/photos/4110101/pexels-photo-4110101.jpeg",
			Description:    "Çorum leblebisi, tuzsuz.",
			InStock:        true,
			MinOrder:       10,
			Unit:           "kg",
			Origin:         "Çorum",
		},
		{
			ID:             "seed-cekirdek",
			Name:           "Tuzlu Ay Çekirdeği",
			Category:       "Çerez",
			PriceCents:     8000,
			WholesaleCents: 6000,
			Image:          "https://images.pexels.com/photos/33850/sunflower-seeds-kernels-cores.jpg",
			Description:    "Dakota cinsi iri ay çekirdeği, kaya tuzlu.",
			InStock:        true,
			MinOrder:       10,
			Unit:           "kg",
		},
	}
}

// Apply inserts the fallback catalog for manual testing. It is idempotent
// via ON CONFLICT on the product name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO products (name, category, price_cents, wholesale_cents, image, description, in_stock, min_order, unit, origin, nutrition_info)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (name) DO UPDATE
SET category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    wholesale_cents = EXCLUDED.wholesale_cents,
    image = EXCLUDED.image,
    description = EXCLUDED.description,
    in_stock = EXCLUDED.in_stock,
    min_order = EXCLUDED.min_order,
    unit = EXCLUDED.unit,
    origin = EXCLUDED.origin,
    nutrition_info = EXCLUDED.nutrition_info
`
	for _, p := range Fallback() {
		if _, err := pool.Exec(ctx, q,
			p.Name, p.Category, p.PriceCents, p.WholesaleCents, p.Image,
			p.Description, p.InStock, p.MinOrder, p.Unit, p.Origin, p.NutritionInfo,
		); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}
	return nil
}
