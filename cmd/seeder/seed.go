package main

import "phuket_estate/internal/domain"

type seedTranslation struct {
	Lang    string
	Field   string
	Content string
}

type seedProperty struct {
	Slug         string
	Price        int64
	Lat, Lng     float64
	Type, Status string
	Translations []seedTranslation
}

var seedAgent = domain.Agent{
	Name:  "Alex Phuket",
	Email: "alex@phuket-estate.com",
}

var seedProperties = []seedProperty{
	{
		Slug:  "villa-bang-tao",
		Price: 45000000,
		Lat:   7.98, Lng: 98.29,
		Type: "VILLA", Status: "AVAILABLE",
		Translations: []seedTranslation{
			{"EN", domain.FieldTitle, "Luxury Villa in Bang Tao"},
			{"EN", domain.FieldDescription, "A beautiful villa near the beach."},
			{"RU", domain.FieldTitle, "Роскошная вилла в Банг Тао"},
			{"RU", domain.FieldDescription, "Прекрасная вилла рядом с пляжем."},
			{"TH", domain.FieldTitle, "วิลล่าหรูในบางเทา"},
			{"TH", domain.FieldDescription, "วิลล่าสวยใกล้ชายหาด"},
		},
	},
	{
		Slug:  "condo-patong",
		Price: 8000000,
		Lat:   7.89, Lng: 98.29,
		Type: "CONDO", Status: "AVAILABLE",
		Translations: []seedTranslation{
			{"EN", domain.FieldTitle, "Modern Condo in Patong"},
			{"EN", domain.FieldDescription, "Heart of the nightlife."},
			{"RU", domain.FieldTitle, "Современное кондо в Патонге"},
			{"RU", domain.FieldDescription, "В центре ночной жизни."},
			{"TH", domain.FieldTitle, "คอนโดทันสมัยในป่าตอง"},
			{"TH", domain.FieldDescription, "ใจกลางสถานบันเทิงยามค่ำคืน"},
		},
	},
	{
		Slug:  "villa-rawai",
		Price: 65000000,
		Lat:   7.77, Lng: 98.32,
		Type: "VILLA", Status: "SOLD",
		Translations: []seedTranslation{
			{"EN", domain.FieldTitle, "Exclusive Villa in Rawai"},
			{"EN", domain.FieldDescription, "Private pool and sea view."},
			{"RU", domain.FieldTitle, "Эксклюзивная вилла в Раваи"},
			{"RU", domain.FieldDescription, "Частный бассейн и вид на море."},
			{"TH", domain.FieldTitle, "วิลล่าหรูในราวย์"},
			{"TH", domain.FieldDescription, "สระว่ายน้ำส่วนตัวและวิวทะเล"},
		},
	},
}
