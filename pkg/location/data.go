package location

var defaultCatalog = MustNew(
	Country{
		Name:        "India",
		PhonePrefix: "+91",
		States: []State{
			{Name: "Maharashtra", Cities: []string{"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur", "Amravati"}},
			{Name: "Karnataka", Cities: []string{"Bangalore", "Mysore", "Mangalore", "Hubli", "Belgaum", "Gulbarga"}},
			{Name: "Tamil Nadu", Cities: []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli"}},
			{Name: "Delhi", Cities: []string{"New Delhi", "Central Delhi", "East Delhi", "North Delhi", "South Delhi", "West Delhi"}},
			{Name: "Gujarat", Cities: []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar"}},
			{Name: "Rajasthan", Cities: []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer", "Bikaner"}},
			{Name: "Uttar Pradesh", Cities: []string{"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut"}},
			{Name: "West Bengal", Cities: []string{"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri"}},
			{Name: "Telangana", Cities: []string{"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"}},
			{Name: "Andhra Pradesh", Cities: []string{"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati"}},
		},
	},
	Country{
		Name:        "United States",
		PhonePrefix: "+1",
		States: []State{
			{Name: "California", Cities: []string{"Los Angeles", "San Francisco", "San Diego", "San Jose", "Sacramento", "Fresno"}},
			{Name: "Texas", Cities: []string{"Houston", "Dallas", "Austin", "San Antonio", "Fort Worth", "El Paso"}},
			{Name: "Florida", Cities: []string{"Miami", "Orlando", "Tampa", "Jacksonville", "Fort Lauderdale"}},
			{Name: "New York", Cities: []string{"New York City", "Buffalo", "Rochester", "Syracuse", "Albany"}},
			{Name: "Illinois", Cities: []string{"Chicago", "Aurora", "Naperville", "Joliet", "Rockford"}},
			{Name: "Pennsylvania", Cities: []string{"Philadelphia", "Pittsburgh", "Allentown", "Erie", "Reading"}},
			{Name: "Ohio", Cities: []string{"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron"}},
			{Name: "Georgia", Cities: []string{"Atlanta", "Augusta", "Columbus", "Savannah", "Athens"}},
			{Name: "North Carolina", Cities: []string{"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem"}},
			{Name: "Michigan", Cities: []string{"Detroit", "Grand Rapids", "Warren", "Sterling Heights", "Ann Arbor"}},
		},
	},
	Country{
		Name:        "United Kingdom",
		PhonePrefix: "+44",
		States: []State{
			{Name: "England", Cities: []string{"London", "Birmingham", "Manchester", "Liverpool", "Leeds", "Sheffield", "Bristol"}},
			{Name: "Scotland", Cities: []string{"Edinburgh", "Glasgow", "Aberdeen", "Dundee", "Inverness"}},
			{Name: "Wales", Cities: []string{"Cardiff", "Swansea", "Newport", "Wrexham"}},
			{Name: "Northern Ireland", Cities: []string{"Belfast", "Derry", "Lisburn", "Newry"}},
		},
	},
	Country{
		Name:        "Canada",
		PhonePrefix: "+1",
		States: []State{
			{Name: "Ontario", Cities: []string{"Toronto", "Ottawa", "Mississauga", "Hamilton", "London", "Kitchener"}},
			{Name: "Quebec", Cities: []string{"Montreal", "Quebec City", "Laval", "Gatineau", "Longueuil"}},
			{Name: "British Columbia", Cities: []string{"Vancouver", "Surrey", "Burnaby", "Richmond", "Victoria"}},
			{Name: "Alberta", Cities: []string{"Calgary", "Edmonton", "Red Deer", "Lethbridge"}},
			{Name: "Manitoba", Cities: []string{"Winnipeg", "Brandon", "Steinbach"}},
			{Name: "Saskatchewan", Cities: []string{"Saskatoon", "Regina", "Prince Albert"}},
		},
	},
	Country{
		Name:        "Australia",
		PhonePrefix: "+61",
		States: []State{
			{Name: "New South Wales", Cities: []string{"Sydney", "Newcastle", "Wollongong", "Central Coast"}},
			{Name: "Victoria", Cities: []string{"Melbourne", "Geelong", "Ballarat", "Bendigo"}},
			{Name: "Queensland", Cities: []string{"Brisbane", "Gold Coast", "Sunshine Coast", "Townsville", "Cairns"}},
			{Name: "Western Australia", Cities: []string{"Perth", "Mandurah", "Bunbury"}},
			{Name: "South Australia", Cities: []string{"Adelaide", "Mount Gambier", "Whyalla"}},
			{Name: "Tasmania", Cities: []string{"Hobart", "Launceston", "Devonport"}},
		},
	},
	Country{
		Name:        "Germany",
		PhonePrefix: "+49",
		States: []State{
			{Name: "Bavaria", Cities: []string{"Munich", "Nuremberg", "Augsburg", "Regensburg"}},
			{Name: "Berlin", Cities: []string{"Berlin"}},
			{Name: "Hamburg", Cities: []string{"Hamburg"}},
			{Name: "Hesse", Cities: []string{"Frankfurt", "Wiesbaden", "Kassel", "Darmstadt"}},
			{Name: "North Rhine-Westphalia", Cities: []string{"Cologne", "Dusseldorf", "Dortmund", "Essen", "Duisburg"}},
		},
	},
	Country{
		Name:        "France",
		PhonePrefix: "+33",
		States: []State{
			{Name: "Île-de-France", Cities: []string{"Paris", "Boulogne-Billancourt", "Saint-Denis", "Versailles"}},
			{Name: "Provence-Alpes-Côte d'Azur", Cities: []string{"Marseille", "Nice", "Toulon", "Aix-en-Provence"}},
			{Name: "Auvergne-Rhône-Alpes", Cities: []string{"Lyon", "Grenoble", "Saint-Étienne"}},
			{Name: "Occitanie", Cities: []string{"Toulouse", "Montpellier", "Nîmes"}},
			{Name: "Nouvelle-Aquitaine", Cities: []string{"Bordeaux", "Limoges", "Poitiers"}},
		},
	},
	Country{
		Name:        "Japan",
		PhonePrefix: "+81",
		States: []State{
			{Name: "Tokyo", Cities: []string{"Tokyo", "Hachioji", "Machida", "Fuchu"}},
			{Name: "Osaka", Cities: []string{"Osaka", "Sakai", "Higashiosaka"}},
			{Name: "Kanagawa", Cities: []string{"Yokohama", "Kawasaki", "Sagamihara"}},
			{Name: "Aichi", Cities: []string{"Nagoya", "Toyota", "Okazaki"}},
			{Name: "Hokkaido", Cities: []string{"Sapporo", "Asahikawa", "Hakodate"}},
		},
	},
	Country{
		Name:        "Singapore",
		PhonePrefix: "+65",
		States: []State{
			{Name: "Central", Cities: []string{"Downtown Core", "Marina Bay", "Orchard", "River Valley"}},
			{Name: "East", Cities: []string{"Bedok", "Pasir Ris", "Tampines", "Changi"}},
			{Name: "North", Cities: []string{"Woodlands", "Yishun", "Sembawang"}},
			{Name: "West", Cities: []string{"Jurong", "Clementi", "Bukit Batok"}},
			{Name: "North-East", Cities: []string{"Serangoon", "Hougang", "Sengkang"}},
		},
	},
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
