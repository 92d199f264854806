package perfume

var table = map[Gender]map[Weather][]Recommendation{
	Male: {
		Hot: {
			{
				Name:   "Dior Homme Cologne",
				Notes:  "citrus, musky",
				Reason: "Fresh citrus profiles feel clean and light in high heat.",
			},
			{
				Name:   "Acqua di Gio",
				Notes:  "marine, citrus, aromatic",
				Reason: "Aquatic notes are refreshing and not too heavy for warm days.",
			},
		},
		Mild: {
			{
				Name:   "Bleu de Chanel",
				Notes:  "grapefruit, incense, woody",
				Reason: "Balanced woody-citrus profile works across spring/autumn weather.",
			},
			{
				Name:   "Prada Luna Rossa Carbon",
				Notes:  "lavender, metallic, ambroxan",
				Reason: "A versatile aromatic scent for moderate temperatures.",
			},
		},
		Cold: {
			{
				Name:   "Tom Ford Noir Extreme",
				Notes:  "amber, vanilla, spices",
				Reason: "Richer sweet-spicy scents project better in cold air.",
			},
			{
				Name:   "Spicebomb Extreme",
				Notes:  "tobacco, cinnamon, vanilla",
				Reason: "Warm spicy profiles are cozy and long-lasting in winter.",
			},
		},
		Rainy: {
			{
				Name:   "Terre d'Hermès",
				Notes:  "orange, vetiver, patchouli",
				Reason: "Earthy-citrus notes pair well with damp, rainy conditions.",
			},
			{
				Name:   "Montblanc Explorer",
				Notes:  "bergamot, vetiver, ambroxan",
				Reason: "Woody fresh profile remains elegant in humid/rainy weather.",
			},
		},
	},
	Female: {
		Hot: {
			{
				Name:   "Dolce & Gabbana Light Blue",
				Notes:  "lemon, apple, cedar",
				Reason: "Bright fruity-citrus scents feel airy in summer heat.",
			},
			{
				Name:   "Versace Bright Crystal",
				Notes:  "pomegranate, peony, musk",
				Reason: "Soft floral freshness is comfortable in warm climates.",
			},
		},
		Mild: {
			{
				Name:   "Chanel Chance Eau Tendre",
				Notes:  "grapefruit, jasmine, white musk",
				Reason: "Clean floral-fruity scents fit changing temperatures.",
			},
			{
				Name:   "YSL Libre",
				Notes:  "lavender, orange blossom, vanilla",
				Reason: "A balanced floral with slight warmth for daily wear.",
			},
		},
		Cold: {
			{
				Name:   "YSL Black Opium",
				Notes:  "coffee, vanilla, white flowers",
				Reason: "Sweet warm perfumes bloom beautifully in cold weather.",
			},
			{
				Name:   "Lancôme La Vie Est Belle",
				Notes:  "iris, praline, patchouli",
				Reason: "Richer gourmand notes provide depth in winter.",
			},
		},
		Rainy: {
			{
				Name:   "Narciso Rodriguez For Her",
				Notes:  "rose, peach, musk",
				Reason: "Musky florals feel elegant and comforting on rainy days.",
			},
			{
				Name:   "Jo Malone Wood Sage & Sea Salt",
				Notes:  "sea salt, sage, ambrette",
				Reason: "Mineral-aromatic freshness pairs nicely with damp weather.",
			},
		},
	},
}
