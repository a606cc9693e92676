package seed

import (
	"log"
	"time"

	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

// Run loads the content database: services, packages, testimonials, blog
// posts, discount codes, and demo products. Idempotent — existing rows
// (matched on their natural key) are left alone.
func Run(db *gorm.DB) error {
	if err := seedServices(db); err != nil {
		return err
	}
	if err := seedPackages(db); err != nil {
		return err
	}
	if err := seedTestimonials(db); err != nil {
		return err
	}
	if err := seedBlogPosts(db); err != nil {
		return err
	}
	if err := seedDiscountCodes(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}
	log.Println("✅ Seed completed")
	return nil
}

func seedServices(db *gorm.DB) error {
	services := []models.Service{
		{
			Slug:          "it-support",
			NameNO:        "IT-support",
			NameEN:        "IT support",
			DescriptionNO: "Rask hjelp når noe stopper opp, på stedet eller eksternt.",
			DescriptionEN: "Fast help when something breaks, on-site or remote.",
			Icon:          models.IconHeadset,
			Category:      "support",
			PriceFrom:     990,
			SortOrder:     1,
		},
		{
			Slug:          "pc-reparasjon",
			NameNO:        "PC-reparasjon",
			NameEN:        "PC repair",
			DescriptionNO: "Feilsøking og reparasjon av bærbare og stasjonære maskiner.",
			DescriptionEN: "Diagnostics and repair of laptops and desktops.",
			Icon:          models.IconWrench,
			Category:      "repair",
			PriceFrom:     490,
			SortOrder:     2,
		},
		{
			Slug:          "skytjenester",
			NameNO:        "Skytjenester",
			NameEN:        "Cloud services",
			DescriptionNO: "Migrering og drift av e-post, lagring og servere i skyen.",
			DescriptionEN: "Migration and operation of email, storage and servers in the cloud.",
			Icon:          models.IconCloud,
			Category:      "cloud",
			PriceFrom:     1490,
			SortOrder:     3,
		},
		{
			Slug:          "sikkerhet",
			NameNO:        "IT-sikkerhet",
			NameEN:        "IT security",
			DescriptionNO: "Sikkerhetsgjennomgang, backup og antivirus for små bedrifter.",
			DescriptionEN: "Security review, backup and antivirus for small businesses.",
			Icon:          models.IconShield,
			Category:      "security",
			PriceFrom:     1990,
			SortOrder:     4,
		},
		{
			Slug:          "gjenbruk",
			NameNO:        "Innbytte og gjenbruk",
			NameEN:        "Trade-in and reuse",
			DescriptionNO: "Vi kjøper brukt utstyr, sletter data sikkert og gir maskinene nytt liv.",
			DescriptionEN: "We buy used equipment, wipe data securely and give machines a second life.",
			Icon:          models.IconRecycle,
			Category:      "sellback",
			PriceFrom:     0,
			SortOrder:     5,
		},
	}

	for _, s := range services {
		if err := db.Where(models.Service{Slug: s.Slug}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPackages(db *gorm.DB) error {
	packages := []models.ServicePackage{
		{
			NameNO:       "Basis",
			NameEN:       "Basic",
			MonthlyPrice: 490,
			FeaturesNO:   "Fjernsupport i kontortid\nAntivirus\nMånedlig statusrapport",
			FeaturesEN:   "Remote support during office hours\nAntivirus\nMonthly status report",
			SortOrder:    1,
		},
		{
			NameNO:       "Standard",
			NameEN:       "Standard",
			MonthlyPrice: 990,
			FeaturesNO:   "Alt i Basis\nSkybackup\nOppmøte innen 24 timer",
			FeaturesEN:   "Everything in Basic\nCloud backup\nOn-site within 24 hours",
			Highlighted:  true,
			SortOrder:    2,
		},
		{
			NameNO:       "Total",
			NameEN:       "Total",
			MonthlyPrice: 1990,
			FeaturesNO:   "Alt i Standard\nDøgnvakt\nFast kontaktperson\nÅrlig sikkerhetsgjennomgang",
			FeaturesEN:   "Everything in Standard\n24/7 on call\nDedicated contact\nAnnual security review",
			SortOrder:    3,
		},
	}

	for _, p := range packages {
		if err := db.Where(models.ServicePackage{NameNO: p.NameNO}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(db *gorm.DB) error {
	testimonials := []models.Testimonial{
		{
			Author:  "Kari Olsen",
			Company: "Olsen Regnskap AS",
			QuoteNO: "Rask respons og folk som faktisk forklarer hva de gjør. Anbefales.",
			QuoteEN: "Fast response and people who actually explain what they are doing. Recommended.",
			Rating:  5,
		},
		{
			Author:  "Anders Berg",
			Company: "Berg Bygg",
			QuoteNO: "Kjøpte tre refurbishede maskiner til kontoret. Som nye, halve prisen.",
			QuoteEN: "Bought three refurbished machines for the office. Like new, half the price.",
			Rating:  5,
		},
		{
			Author:  "Ingrid Moe",
			QuoteNO: "Fikk reparert laptopen på to dager. Ryddig prisoverslag på forhånd.",
			QuoteEN: "Laptop repaired in two days. Clear estimate up front.",
			Rating:  4,
		},
	}

	for _, t := range testimonials {
		if err := db.Where(models.Testimonial{Author: t.Author}).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedBlogPosts(db *gorm.DB) error {
	posts := []models.BlogPost{
		{
			Slug:        "hvorfor-refurbished",
			TitleNO:     "Hvorfor kjøpe refurbished?",
			TitleEN:     "Why buy refurbished?",
			ExcerptNO:   "Bedre for lommeboka og miljøet. Her er det du bør vite om gradene A, B og C.",
			ExcerptEN:   "Better for your wallet and the planet. What to know about grades A, B and C.",
			BodyNO:      "En refurbished maskin er testet, rengjort og klargjort på nytt...",
			BodyEN:      "A refurbished machine has been tested, cleaned and re-prepared...",
			Published:   true,
			PublishedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "backup-sjekkliste",
			TitleNO:     "Backup-sjekkliste for småbedrifter",
			TitleEN:     "Backup checklist for small businesses",
			ExcerptNO:   "Fem punkter som avgjør om bedriften overlever et datatap.",
			ExcerptEN:   "Five points that decide whether your business survives data loss.",
			BodyNO:      "Regel nummer én: en backup du ikke har testet er ingen backup...",
			BodyEN:      "Rule number one: a backup you have not tested is not a backup...",
			Published:   true,
			PublishedAt: time.Date(2025, 5, 22, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, p := range posts {
		if err := db.Where(models.BlogPost{Slug: p.Slug}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDiscountCodes(db *gorm.DB) error {
	codes := []models.DiscountCode{
		{
			Code:           "SAVE10",
			Type:           models.DiscountPercentage,
			Value:          10,
			ValidFrom:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil:     time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			MinOrderAmount: 200,
			IsActive:       true,
		},
		{
			Code:       "VELKOMMEN50",
			Type:       models.DiscountFixed,
			Value:      50,
			ValidFrom:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil: time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			MaxUses:    500,
			IsActive:   true,
		},
	}

	for _, dc := range codes {
		if err := db.Where(models.DiscountCode{Code: dc.Code}).FirstOrCreate(&dc).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	products := []models.Product{
		{
			SKU:          "NX-LT-001",
			NameNO:       "Lenovo ThinkPad T14 (refurbished)",
			NameEN:       "Lenovo ThinkPad T14 (refurbished)",
			Price:        5990,
			ComparePrice: 12990,
			Grade:        models.GradeA,
			Stock:        12,
		},
		{
			SKU:          "NX-LT-002",
			NameNO:       "Dell Latitude 5420 (refurbished)",
			NameEN:       "Dell Latitude 5420 (refurbished)",
			Price:        4490,
			ComparePrice: 10990,
			Grade:        models.GradeB,
			Stock:        8,
		},
		{
			SKU:    "NX-AC-010",
			NameNO: "USB-C dokkingstasjon",
			NameEN: "USB-C docking station",
			Price:  899,
			Grade:  models.GradeNew,
			Stock:  40,
		},
		{
			SKU:    "NX-AC-011",
			NameNO: "Trådløs mus og tastatur",
			NameEN: "Wireless mouse and keyboard",
			Price:  399,
			Grade:  models.GradeNew,
			Stock:  60,
		},
	}

	for _, p := range products {
		if err := db.Where(models.Product{SKU: p.SKU}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
