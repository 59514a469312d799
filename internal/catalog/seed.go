// Package catalog holds the records the storefront starts with. Every call returns fresh
// copies, so callers may mutate what they get.
package catalog

import "github.com/eagleeyes/storefront/internal/models"

// SeedUser is a directory entry with its plaintext demo password, hashed when loaded.
type SeedUser struct {
	models.User
	Password string
}

func Users() []SeedUser {
	return []SeedUser{
		{User: models.User{ID: "1", Name: "Admin User", Email: "admin@eagleeyes.com", Role: models.RoleAdmin}, Password: "adminpassword"},
		{User: models.User{ID: "2", Name: "Jane Doe", Email: "jane@example.com", Role: models.RoleCustomer}, Password: "userpassword"},
		{User: models.User{ID: "3", Name: "John Trainer", Email: "trainer@eagleeyes.com", Role: models.RoleTrainer}, Password: "trainerpassword"},
	}
}

func Products() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "4K Ultra HD CCTV Camera",
			Category:    "Security",
			Description: "Weatherproof 4K Ultra HD security camera with night vision and motion detection.",
			Price:       300000,
			ImageURL:    "https://images.pexels.com/photos/7161073/pexels-photo-7161073.jpeg",
			Stock:       50,
			Specs:       map[string]string{"Resolution": "4K Ultra HD", "Field of View": "120°", "Night Vision": "100ft"},
		},
		{
			ID:          "p2",
			Name:        "5kW Solar Panel System",
			Category:    "Solar Energy",
			Description: "Complete 5kW monocrystalline solar panel kit for residential use. Includes panels, inverter, and mounting hardware.",
			Price:       6750000,
			ImageURL:    "https://images.pexels.com/photos/433308/pexels-photo-433308.jpeg",
			Stock:       15,
			Specs:       map[string]string{"Power Output": "5000W", "Panel Type": "Monocrystalline", "Warranty": "25 years"},
		},
		{
			ID:          "p3",
			Name:        "Smart Video Doorbell",
			Category:    "Security",
			Description: "See, hear, and speak to anyone at your door from your phone, tablet, or PC.",
			Price:       195000,
			ImageURL:    "https://images.pexels.com/photos/6966113/pexels-photo-6966113.jpeg",
			Stock:       75,
			Specs:       map[string]string{"Video": "1080p HD", "Two-way Audio": "Yes", "Power": "Battery or Hardwired"},
		},
		{
			ID:          "p4",
			Name:        "Electric Fence Energizer",
			Category:    "Security",
			Description: "High-voltage energizer for electric security fences. Covers up to 10km.",
			Price:       525000,
			ImageURL:    "https://images.pexels.com/photos/997275/pexels-photo-997275.jpeg",
			Stock:       30,
			Specs:       map[string]string{"Output Voltage": "10,000V", "Range": "10km", "Power Source": "AC/DC"},
		},
		{
			ID:          "p5",
			Name:        "10kWh Solar Battery",
			Category:    "Solar Energy",
			Description: "Lithium-ion battery for storing solar energy. Provides backup power during outages.",
			Price:       12000000,
			ImageURL:    "https://images.pexels.com/photos/5799863/pexels-photo-5799863.jpeg",
			Stock:       10,
			Specs:       map[string]string{"Capacity": "10 kWh", "Chemistry": "LiFePO4", "Lifespan": "10+ years"},
		},
		{
			ID:          "p6",
			Name:        "Professional Walkie Talkie Set",
			Category:    "General Security",
			Description: "A set of two durable, long-range walkie talkies for professional security teams.",
			Price:       375000,
			ImageURL:    "https://images.pexels.com/photos/1647919/pexels-photo-1647919.jpeg",
			Stock:       40,
			Specs:       map[string]string{"Range": "Up to 5 miles", "Channels": "22", "Battery": "Rechargeable Li-ion"},
		},
	}
}

func Courses() []models.Course {
	return []models.Course{
		{
			ID:          "c1",
			Title:       "CCTV Installation Fundamentals",
			Description: "Learn the basics of CCTV systems, from camera types to wiring and NVR setup.",
			Instructor:  "John Trainer",
			Duration:    "6 Weeks",
			Price:       450000,
			ImageURL:    "https://images.pexels.com/photos/8452417/pexels-photo-8452417.jpeg",
			Modules:     []models.CourseModule{{Title: "Intro", Videos: []models.Video{}}, {Title: "Installation", Videos: []models.Video{}}},
		},
		{
			ID:          "c2",
			Title:       "Advanced Solar Panel Sizing",
			Description: "A deep dive into calculating energy needs and designing efficient solar power systems.",
			Instructor:  "Admin User",
			Duration:    "8 Weeks",
			Price:       750000,
			ImageURL:    "https://images.pexels.com/photos/3862622/pexels-photo-3862622.jpeg",
			Modules:     []models.CourseModule{{Title: "Basics", Videos: []models.Video{}}, {Title: "Advanced Sizing", Videos: []models.Video{}}},
		},
		{
			ID:          "c3",
			Title:       "Physical Security Best Practices",
			Description: "Covering risk assessment, access control, and perimeter defense strategies.",
			Instructor:  "John Trainer",
			Duration:    "4 Weeks",
			Price:       300000,
			ImageURL:    "https://images.pexels.com/photos/8532431/pexels-photo-8532431.jpeg",
			Modules:     []models.CourseModule{{Title: "Intro to Security", Videos: []models.Video{}}, {Title: "Perimeter Defense", Videos: []models.Video{}}},
		},
	}
}

func BlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:       "b1",
			Title:    "The Future of Home Security is Smart",
			Author:   "Admin User",
			Date:     "2023-10-26",
			Excerpt:  "Smart home technology is revolutionizing the way we protect our homes. From AI-powered cameras to integrated systems...",
			Content:  "Full content goes here.",
			ImageURL: "https://images.pexels.com/photos/3951901/pexels-photo-3951901.jpeg",
			Tags:     []string{"Security", "Smart Home"},
		},
		{
			ID:       "b2",
			Title:    "Is Going Solar Right For You? A Complete Guide",
			Author:   "Jane Doe",
			Date:     "2023-10-20",
			Excerpt:  "With rising energy costs, many are considering solar power. This guide breaks down the costs, benefits, and considerations...",
			Content:  "Full content goes here.",
			ImageURL: "https://images.pexels.com/photos/4148019/pexels-photo-4148019.jpeg",
			Tags:     []string{"Solar", "Energy", "Finance"},
		},
	}
}

// OrderHistory is the demo history shown on every profile page.
func OrderHistory() []models.Order {
	products, courses := Products(), Courses()
	return []models.Order{
		{
			ID:     "order1",
			Date:   "2023-10-15",
			Total:  300000,
			Status: models.OrderDelivered,
			Items:  []models.CartItem{{Item: products[0], Quantity: 1}},
		},
		{
			ID:     "order2",
			Date:   "2023-09-01",
			Total:  750000,
			Status: models.OrderDelivered,
			Items:  []models.CartItem{{Item: courses[1], Quantity: 1}},
		},
	}
}
