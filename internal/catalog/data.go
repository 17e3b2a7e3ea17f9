package catalog

// Default returns the practice's built-in catalog snapshot. Entries keep
// their listed order; search results preserve it.
func Default() *Catalog {
	return &Catalog{
		Providers: []Provider{
			{ID: "sarah-mitchell", Name: "Dr. Sarah Mitchell", Gender: "female", Specialties: []string{"Anxiety & Depression", "Trauma Recovery"}},
			{ID: "michael-rodriguez", Name: "Michael Rodriguez", Gender: "male", Specialties: []string{"Couples Therapy", "Family Counseling"}},
			{ID: "emily-chen", Name: "Dr. Emily Chen", Gender: "female", Specialties: []string{"Child & Adolescent", "Behavioral Issues"}},
			{ID: "james-thompson", Name: "James Thompson", Gender: "male", Specialties: []string{"Addiction Recovery", "Crisis Intervention"}},
			{ID: "lisa-park", Name: "Dr. Lisa Park", Gender: "female", Specialties: []string{"Individual Therapy", "Mindfulness"}},
			{ID: "robert-williams", Name: "Robert Williams", Gender: "male", Specialties: []string{"Group Therapy", "PTSD Treatment"}},
		},
		Services: []Service{
			{ID: "individual", Name: "Individual Therapy", Price: 150, DurationMinutes: 50},
			{ID: "couples", Name: "Couples Therapy", Price: 180, DurationMinutes: 50},
			{ID: "family", Name: "Family Therapy", Price: 200, DurationMinutes: 50},
			{ID: "consultation", Name: "Initial Consultation", Price: 120, DurationMinutes: 50},
		},
		TimeSlots: []string{
			"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM",
			"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
		},
		ContactServices: []string{
			"individual", "couples", "family", "child", "group", "crisis",
		},
		Treatments: []string{
			"Individual Therapy",
			"Couples Therapy",
			"Family Therapy",
			"Child & Adolescent Therapy",
			"Group Therapy",
			"Crisis Intervention",
			"EMDR Therapy",
			"Addiction Recovery",
			"Other",
		},
		Documents: []SearchDocument{
			{ID: "therapist-sarah-mitchell", Type: DocTherapist, Title: "Dr. Sarah Mitchell", Description: "Licensed Clinical Psychologist specializing in Anxiety, Depression, and Trauma Recovery", Category: "Therapist"},
			{ID: "therapist-michael-rodriguez", Type: DocTherapist, Title: "Michael Rodriguez", Description: "Licensed Marriage & Family Therapist specializing in Couples and Family Counseling", Category: "Therapist"},
			{ID: "therapist-emily-chen", Type: DocTherapist, Title: "Dr. Emily Chen", Description: "Licensed Clinical Social Worker specializing in Child & Adolescent Therapy", Category: "Therapist"},
			{ID: "therapist-james-thompson", Type: DocTherapist, Title: "James Thompson", Description: "Licensed Professional Counselor specializing in Addiction Recovery and Crisis Intervention", Category: "Therapist"},

			{ID: "service-individual", Type: DocService, Title: "Individual Therapy", Description: "One-on-one sessions for anxiety, depression, trauma, and personal growth", Category: "Service"},
			{ID: "service-couples", Type: DocService, Title: "Couples Therapy", Description: "Relationship counseling to strengthen communication and resolve conflicts", Category: "Service"},
			{ID: "service-family", Type: DocService, Title: "Family Therapy", Description: "Heal family dynamics and improve relationships between family members", Category: "Service"},
			{ID: "service-child", Type: DocService, Title: "Child Therapy", Description: "Specialized care for children with behavioral and emotional challenges", Category: "Service"},
			{ID: "service-crisis", Type: DocService, Title: "Crisis Intervention", Description: "24/7 support for mental health emergencies and crisis situations", Category: "Service"},
			{ID: "service-group", Type: DocService, Title: "Group Therapy", Description: "Connect with others facing similar challenges in supportive group settings", Category: "Service"},

			{ID: "location-denver", Type: DocLocation, Title: "Denver Office", Description: "Main Office: 123 Wellness Way, Denver, CO 80202", Category: "Location"},
			{ID: "location-boulder", Type: DocLocation, Title: "Boulder Office", Description: "456 Mountain View Dr, Boulder, CO 80301", Category: "Location"},
			{ID: "location-fort-collins", Type: DocLocation, Title: "Fort Collins Office", Description: "789 Harmony Rd, Fort Collins, CO 80526", Category: "Location"},

			{ID: "faq-right-for-me", Type: DocFAQ, Title: "How do I know if therapy is right for me?", Description: "Learn about the signs that indicate therapy might be helpful for your situation", Category: "FAQ"},
			{ID: "faq-first-session", Type: DocFAQ, Title: "What should I expect in my first session?", Description: "Understanding the intake process and what happens in your first therapy session", Category: "FAQ"},
			{ID: "faq-insurance", Type: DocFAQ, Title: "Do you accept my insurance?", Description: "Information about insurance coverage and payment options", Category: "FAQ"},
			{ID: "faq-duration", Type: DocFAQ, Title: "How long does therapy take?", Description: "Understanding therapy duration and what factors influence treatment length", Category: "FAQ"},
			{ID: "faq-confidential", Type: DocFAQ, Title: "Is therapy confidential?", Description: "Learn about privacy, HIPAA protection, and confidentiality in therapy", Category: "FAQ"},
		},
	}
}
