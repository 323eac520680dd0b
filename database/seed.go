package database

import (
	"log"

	"barberbook-backend/models"

	"gorm.io/gorm"
)

type seedService struct {
	name     string
	duration int
	price    float64
}

type seedReview struct {
	author  string
	rating  int
	comment string
	date    string
}

type seedShop struct {
	name        string
	address     string
	image       string
	rating      float64
	reviewCount int
	description string
	approved    bool
	services    []seedService
	barbers     []string
	reviews     []seedReview
}

var catalog = []seedShop{
	{
		name:        "The Dapper Gentleman",
		address:     "123 Main St, Downtown",
		image:       "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?w=800&q=80",
		rating:      4.8,
		reviewCount: 124,
		description: "A classic barbershop experience with a modern twist. We specialize in hot towel shaves and precision cuts.",
		approved:    true,
		services: []seedService{
			{"Classic Haircut", 30, 35},
			{"Hot Towel Shave", 45, 45},
			{"Beard Trim", 20, 25},
			{"Haircut + Shave Combo", 60, 70},
		},
		barbers: []string{"James", "Marcus", "David"},
		reviews: []seedReview{
			{"Alex D.", 5, "Best fade in the city. James really knows his stuff!", "2023-10-15"},
			{"Sam K.", 4, "Great vibe, slightly pricey but worth it.", "2023-10-10"},
			{"Chris P.", 5, "Professional and clean. Highly recommended.", "2023-10-05"},
		},
	},
	{
		name:        "Urban Cuts",
		address:     "456 Market Ave, Westside",
		image:       "https://images.unsplash.com/photo-1503951914875-befbb64918d3?w=800&q=80",
		rating:      4.5,
		reviewCount: 89,
		description: "Street style cuts and designs. The place to be for modern trends and creative fades.",
		approved:    true,
		services: []seedService{
			{"Fade & Line Up", 40, 40},
			{"Hair Design", 60, 60},
			{"Buzz Cut", 20, 20},
			{"Color Treatment", 45, 50},
		},
		barbers: []string{"Tariq", "DeShawn"},
		reviews: []seedReview{
			{"Jordan M.", 5, "Tariq is an artist with clippers!", "2023-11-01"},
			{"Mike T.", 4, "Good energy, great cuts.", "2023-10-28"},
		},
	},
	{
		name:        "Blade & Bourbon",
		address:     "789 Oak Ln, Uptown",
		image:       "https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=800&q=80",
		rating:      4.9,
		reviewCount: 210,
		description: "Enjoy a complimentary bourbon with every service. Premium grooming experience in an upscale setting.",
		approved:    true,
		services: []seedService{
			{"Full Grooming Service", 90, 100},
			{"Executive Cut", 45, 55},
			{"Beard Sculpting", 30, 40},
			{"Scalp Treatment", 25, 35},
		},
		barbers: []string{"Arthur", "William", "Robert"},
		reviews: []seedReview{
			{"Brian H.", 5, "Worth every penny. Premium experience.", "2023-11-08"},
			{"David L.", 5, "The bourbon is a nice touch!", "2023-11-05"},
			{"Paul G.", 4, "Excellent service, book ahead.", "2023-10-30"},
		},
	},
	{
		name:        "Clipper Kings",
		address:     "321 Pine St, Midtown",
		image:       "https://images.unsplash.com/photo-1599351431-5a0c5d1d4ff0?w=800&q=80",
		rating:      4.6,
		reviewCount: 156,
		description: "Fast, friendly service with expert precision. Perfect for on-the-go professionals.",
		approved:    true,
		services: []seedService{
			{"Express Cut", 20, 25},
			{"Standard Haircut", 35, 35},
			{"Beard Maintenance", 25, 20},
			{"Kids Haircut", 25, 20},
		},
		barbers: []string{"Kevin", "Eric", "Tom", "Jose"},
		reviews: []seedReview{
			{"Ryan B.", 5, "Quick and efficient. Love it!", "2023-11-10"},
			{"Matt W.", 4, "Consistent quality every time.", "2023-11-07"},
			{"Tony S.", 5, "No wait time and perfect cuts.", "2023-11-03"},
		},
	},
	{
		name:        "Heritage Barbershop",
		address:     "555 Elm Ave, Historic District",
		image:       "https://images.unsplash.com/photo-1599351431-7db7aecc58a0?w=800&q=80",
		rating:      4.7,
		reviewCount: 178,
		description: "Old-school charm meets modern technique. A timeless barbershop experience since 1985.",
		approved:    true,
		services: []seedService{
			{"Traditional Haircut", 35, 30},
			{"Straight Razor Shave", 50, 40},
			{"Full Service Shave", 75, 65},
			{"Mustache Trim", 15, 15},
		},
		barbers: []string{"Frank", "Tony"},
		reviews: []seedReview{
			{"Vincent C.", 5, "Authentic experience. Love the old-school vibe.", "2023-11-09"},
			{"Ralph K.", 5, "Frank is a true craftsman.", "2023-11-06"},
			{"Danny F.", 4, "Feels like stepping back in time.", "2023-11-01"},
		},
	},
	{
		name:        "Modern Edge",
		address:     "789 Tech Blvd, Silicon Valley",
		image:       "https://images.unsplash.com/photo-1599351431-5d87fb4cac7f?w=800&q=80",
		rating:      4.4,
		reviewCount: 92,
		description: "Contemporary barbershop with trendy cuts and fresh styles. Young, vibrant atmosphere.",
		approved:    true,
		services: []seedService{
			{"Trendy Fade", 35, 38},
			{"Textured Crop", 40, 42},
			{"Line Design", 30, 35},
			{"Beard Shape-up", 20, 22},
		},
		barbers: []string{"Kyle", "Brandon"},
		reviews: []seedReview{
			{"Tyler M.", 4, "Great modern cuts. Always on trend.", "2023-11-08"},
			{"Jason L.", 4, "Friendly staff, good vibes.", "2023-10-31"},
		},
	},
	{
		name:        "Premium Grooming Studio",
		address:     "200 Luxury Lane, Riverside",
		image:       "https://images.unsplash.com/photo-1599351431-5d6a9d4ee0f0?w=800&q=80",
		rating:      4.8,
		reviewCount: 198,
		description: "High-end barbering with premium products. Personalized attention and luxury amenities.",
		approved:    true,
		services: []seedService{
			{"Premium Haircut", 45, 60},
			{"Hot Oil Massage", 30, 45},
			{"Complete Grooming", 90, 120},
			{"Facial Treatment", 35, 55},
		},
		barbers: []string{"Sebastian", "Ricardo", "Marco"},
		reviews: []seedReview{
			{"Lucas T.", 5, "Absolutely fantastic. Best experience ever.", "2023-11-10"},
			{"Adrian M.", 5, "Worth the premium price.", "2023-11-07"},
			{"Sergio P.", 5, "Exceptional service and results.", "2023-11-02"},
		},
	},
	{
		name:        "New Shop Application",
		address:     "101 Pending St",
		image:       "https://images.unsplash.com/photo-1599351431-202e0f0b3d7a?w=800&q=80",
		description: "Awaiting approval.",
		approved:    false,
	},
}

// SeedShops loads the curated shop catalog on first boot. Skipped when
// any catalog shop (one without an owner) is already present.
func SeedShops(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Shop{}).Where("owner_id IS NULL").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range catalog {
		shop := models.Shop{
			Name:        s.name,
			Address:     s.address,
			Image:       s.image,
			Rating:      s.rating,
			ReviewCount: s.reviewCount,
			Description: s.description,
			Approved:    s.approved,
		}
		for _, svc := range s.services {
			shop.Services = append(shop.Services, models.Service{
				Name:     svc.name,
				Duration: svc.duration,
				Price:    svc.price,
			})
		}
		for _, name := range s.barbers {
			shop.Barbers = append(shop.Barbers, models.Barber{
				Name:   name,
				Avatar: "https://i.pravatar.cc/150?u=" + name,
			})
		}
		for _, r := range s.reviews {
			shop.Reviews = append(shop.Reviews, models.Review{
				AuthorName: r.author,
				Rating:     r.rating,
				Comment:    r.comment,
				Date:       r.date,
			})
		}
		if err := db.Create(&shop).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d catalog shops", len(catalog))
	return nil
}
