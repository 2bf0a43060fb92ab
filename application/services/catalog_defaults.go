package services

// Built-in reference data. Seeded into the table on startup when the
// catalog is empty, so a fresh environment serves a complete checklist
// without any provisioning step.

type seedArea struct {
	name  string
	items []seedItem
}

type seedItem struct {
	id          string
	description string
}

var defaultAreas = []seedArea{
	{
		name: "Site and Building Exterior",
		items: []seedItem{
			{"SB001", "Walks, steps, drives - cracks, breaks, trip hazards"},
			{"SB002", "Parking/carport - structural defects, damage"},
			{"SB003", "Fence/retaining wall - structural defects"},
			{"SB004", "Building exterior - foundation cracks, structure issues"},
			{"SB005", "Roof - leaks, damage, missing shingles"},
			{"SB006", "Gutters/downspouts - damage, clogs, detachment"},
			{"SB007", "Windows/screens - broken, damage, missing"},
			{"SB008", "Doors/locks - damage, inoperable, missing"},
			{"SB009", "Paint/siding - peeling, damage, deterioration"},
		},
	},
	{
		name: "Kitchen",
		items: []seedItem{
			{"K001", "Kitchen sink - leaks, damage"},
			{"K002", "Kitchen countertop - cracks, damage"},
			{"K003", "Kitchen cabinets - damage, missing, inoperable"},
			{"K004", "Kitchen stove - inoperable, gas leaks"},
			{"K005", "Kitchen refrigerator - inoperable, damage"},
			{"K006", "Kitchen floor - damage, tripping hazard"},
			{"K007", "Kitchen walls/ceiling - damage, water stains"},
			{"K008", "Kitchen electrical - missing covers, exposed wires"},
		},
	},
	{
		name: "Bathroom",
		items: []seedItem{
			{"B001", "Bathroom sink - leaks, damage"},
			{"B002", "Bathroom toilet - leaks, inoperable, damage"},
			{"B003", "Bathroom tub/shower - leaks, damage, missing fixtures"},
			{"B004", "Bathroom floor - damage, water damage"},
			{"B005", "Bathroom walls/ceiling - damage, water stains, mold"},
			{"B006", "Bathroom exhaust fan - inoperable, missing"},
			{"B007", "Bathroom electrical - missing covers, GFI issues"},
			{"B008", "Bathroom cabinets/vanity - damage, missing"},
		},
	},
	{
		name: "Living Room/Dining Room",
		items: []seedItem{
			{"LR001", "Living room floor - damage, tripping hazard"},
			{"LR002", "Living room walls/ceiling - damage, holes, cracks"},
			{"LR003", "Living room windows - damage, inoperable"},
			{"LR004", "Living room electrical - missing covers, outlets inoperable"},
			{"LR005", "Living room doors - damage, inoperable locks"},
		},
	},
	{
		name: "Bedrooms",
		items: []seedItem{
			{"BR001", "Bedroom floor - damage, tripping hazard"},
			{"BR002", "Bedroom walls/ceiling - damage, holes, cracks"},
			{"BR003", "Bedroom windows - damage, inoperable"},
			{"BR004", "Bedroom closet - damage, missing doors"},
			{"BR005", "Bedroom electrical - missing covers, outlets inoperable"},
			{"BR006", "Bedroom doors - damage, inoperable locks"},
		},
	},
	{
		name: "HVAC/Utilities",
		items: []seedItem{
			{"HV001", "Heating system - inoperable, unsafe"},
			{"HV002", "Air conditioning - inoperable"},
			{"HV003", "Hot water heater - inoperable, leaks"},
			{"HV004", "Thermostat - inoperable, missing"},
			{"HV005", "Ventilation - inadequate, inoperable"},
			{"HV006", "Electrical panel - hazards, improper wiring"},
			{"HV007", "Plumbing - leaks, water pressure issues"},
		},
	},
	{
		name: "Safety/Fire Protection",
		items: []seedItem{
			{"SF001", "Smoke detectors - missing, inoperable, expired"},
			{"SF002", "Carbon monoxide detectors - missing, inoperable, expired"},
			{"SF003", "Fire extinguisher - missing, expired"},
			{"SF004", "Emergency exits - blocked, inoperable"},
			{"SF005", "Railings/guards - missing, damaged, unsafe"},
		},
	},
	{
		name: "Misc/Other",
		items: []seedItem{
			{"M001", "Pest infestation - evidence of rodents, insects"},
			{"M002", "Mold/mildew - visible growth, moisture issues"},
			{"M003", "Lead paint hazards - peeling paint (pre-1978 homes)"},
			{"M004", "Trip hazards - loose carpet, uneven floors"},
			{"M005", "Storage/clutter - excessive, blocking access"},
			{"M006", "Other deficiencies - specify in notes"},
		},
	},
}

type seedPMICategory struct {
	id    string
	name  string
	items []seedItem
}

var defaultPMICategories = []seedPMICategory{
	{
		id: "CAT001", name: "HVAC",
		items: []seedItem{
			{"PMI001", "Replace or clean air filter"},
			{"PMI002", "Check thermostat operation"},
			{"PMI003", "Inspect ductwork for leaks"},
			{"PMI004", "Clean condenser coils"},
		},
	},
	{
		id: "CAT002", name: "Hot Water Tank",
		items: []seedItem{
			{"PMI005", "Drain sediment from tank"},
			{"PMI006", "Check temperature setting (120F)"},
			{"PMI007", "Inspect for leaks"},
			{"PMI008", "Test pressure relief valve"},
		},
	},
	{
		id: "CAT003", name: "Plumbing",
		items: []seedItem{
			{"PMI009", "Check all faucets for leaks"},
			{"PMI010", "Inspect under sinks for leaks"},
			{"PMI011", "Test toilet flush mechanism"},
			{"PMI012", "Check water pressure"},
		},
	},
	{
		id: "CAT004", name: "Electrical",
		items: []seedItem{
			{"PMI013", "Test GFCI outlets"},
			{"PMI014", "Check circuit breaker panel"},
			{"PMI015", "Inspect visible wiring"},
			{"PMI016", "Test smoke detectors"},
		},
	},
	{
		id: "CAT005", name: "Appliances",
		items: []seedItem{
			{"PMI017", "Clean refrigerator coils"},
			{"PMI018", "Check stove burners/elements"},
			{"PMI019", "Clean range hood filter"},
			{"PMI020", "Test dishwasher operation"},
		},
	},
	{
		id: "CAT006", name: "Safety Systems",
		items: []seedItem{
			{"PMI021", "Test smoke detectors (all locations)"},
			{"PMI022", "Test carbon monoxide detectors"},
			{"PMI023", "Check fire extinguisher (if provided)"},
			{"PMI024", "Inspect emergency exits"},
		},
	},
	{
		id: "CAT007", name: "Windows and Doors",
		items: []seedItem{
			{"PMI025", "Check window locks"},
			{"PMI026", "Inspect window screens"},
			{"PMI027", "Test door locks"},
			{"PMI028", "Check weatherstripping"},
		},
	},
	{
		id: "CAT008", name: "General Interior",
		items: []seedItem{
			{"PMI029", "Check caulking around tubs/showers"},
			{"PMI030", "Inspect for water stains on ceilings"},
			{"PMI031", "Check flooring for damage"},
			{"PMI032", "Test all light fixtures"},
		},
	},
}
