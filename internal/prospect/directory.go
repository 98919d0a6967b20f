package prospect

// sampleDirectory is the built-in demo dataset covering several industries
// and metros so that most ICPs return a non-empty pool.
var sampleDirectory = []Company{
	// Marketing agencies, Austin
	{
		Name:     "Austin Digital Solutions",
		Industry: "Digital Marketing",
		Size:     "15-25 employees",
		Location: "Austin, TX",
		Contacts: []Contact{{
			Name:        "Sarah Johnson",
			Title:       "Marketing Director",
			Email:       "sarah.johnson@austindigital.com",
			LinkedinURL: "/in/sarah-johnson-marketing",
			Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b612b47c?w=150&h=150&fit=crop&crop=face",
		}},
	},
	{
		Name:     "Growth Labs Marketing",
		Industry: "Growth Marketing",
		Size:     "8-15 employees",
		Location: "Austin, TX",
		Contacts: []Contact{{
			Name:        "Michael Chen",
			Title:       "Founder & CEO",
			Email:       "michael@growthlabs.co",
			LinkedinURL: "/in/michael-chen-ceo",
			Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		}},
	},
	{
		Name:     "Stellar Creative Agency",
		Industry: "Creative Marketing",
		Size:     "20-30 employees",
		Location: "Austin, TX",
		Contacts: []Contact{{
			Name:        "Emily Rodriguez",
			Title:       "VP of Marketing",
			Email:       "emily.r@stellarcreative.com",
			LinkedinURL: "/in/emily-rodriguez-marketing",
			Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		}},
	},
	// Marketing agencies, Chicago
	{
		Name:     "Chicago Marketing Hub",
		Industry: "Digital Marketing",
		Size:     "25-35 employees",
		Location: "Chicago, IL",
		Contacts: []Contact{{
			Name:        "Robert Williams",
			Title:       "Creative Director",
			Email:       "robert@chicagomarketing.com",
			LinkedinURL: "/in/robert-williams-creative",
			Avatar:      "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=face",
		}},
	},
	{
		Name:     "Windy City Digital",
		Industry: "Performance Marketing",
		Size:     "12-20 employees",
		Location: "Chicago, IL",
		Contacts: []Contact{{
			Name:        "Amanda Davis",
			Title:       "Account Manager",
			Email:       "amanda@windycitydigital.com",
			LinkedinURL: "/in/amanda-davis-marketing",
			Avatar:      "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=150&h=150&fit=crop&crop=face",
		}},
	},
	// Dental practices, Chicago
	{
		Name:     "Chicago Family Dentistry",
		Industry: "Dental Practice",
		Size:     "8-12 employees",
		Location: "Chicago, IL",
		Contacts: []Contact{{
			Name:        "Dr. James Miller",
			Title:       "Practice Owner",
			Email:       "jmiller@chicagofamilydental.com",
			LinkedinURL: "/in/dr-james-miller-dds",
			Avatar:      "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=150&h=150&fit=crop&crop=face",
		}},
	},
	{
		Name:     "Smile Solutions Chicago",
		Industry: "Dental Practice",
		Size:     "15-20 employees",
		Location: "Chicago, IL",
		Contacts: []Contact{{
			Name:        "Dr. Lisa Garcia",
			Title:       "Lead Dentist",
			Email:       "lgarcia@smilesolutionschicago.com",
			LinkedinURL: "/in/dr-lisa-garcia-dds",
			Avatar:      "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
		}},
	},
	{
		Name:     "Premier Dental Group",
		Industry: "Dental Practice",
		Size:     "25-30 employees",
		Location: "Chicago, IL",
		Contacts: []Contact{{
			Name:        "Dr. Michael Thompson",
			Title:       "Managing Partner",
			Email:       "mthompson@premierdentalgroup.com",
			LinkedinURL: "/in/dr-michael-thompson-dds",
			Avatar:      "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=150&h=150&fit=crop&crop=face",
		}},
	},
	// Consulting, Austin
	{
		Name:     "Strategic Growth Consultants",
		Industry: "Business Consulting",
		Size:     "10-15 employees",
		Location: "Austin, TX",
		Contacts: []Contact{{
			Name:        "Jennifer Lee",
			Title:       "Senior Consultant",
			Email:       "jennifer@strategicgrowth.com",
			LinkedinURL: "/in/jennifer-lee-consultant",
			Avatar:      "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=150&h=150&fit=crop&crop=face",
		}},
	},
	{
		Name:     "Austin Business Solutions",
		Industry: "Management Consulting",
		Size:     "20-25 employees",
		Location: "Austin, TX",
		Contacts: []Contact{{
			Name:        "David Kim",
			Title:       "Managing Director",
			Email:       "david@austinbusiness.com",
			LinkedinURL: "/in/david-kim-consulting",
			Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		}},
	},
	// Tech, San Francisco
	{
		Name:     "Bay Area Tech Solutions",
		Industry: "Software Development",
		Size:     "50-75 employees",
		Location: "San Francisco, CA",
		Contacts: []Contact{{
			Name:        "Alex Chen",
			Title:       "CTO",
			Email:       "alex@bayareatech.com",
			LinkedinURL: "/in/alex-chen-cto",
			Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		}},
	},
	// Legal, New York
	{
		Name:     "Manhattan Legal Partners",
		Industry: "Legal Services",
		Size:     "30-40 employees",
		Location: "New York, NY",
		Contacts: []Contact{{
			Name:        "Sarah Peterson",
			Title:       "Managing Partner",
			Email:       "speterson@manhattanlegal.com",
			LinkedinURL: "/in/sarah-peterson-attorney",
			Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b612b47c?w=150&h=150&fit=crop&crop=face",
		}},
	},
}
