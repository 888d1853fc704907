package quiz

// DefaultQuestions returns the production question bank: 17 questions across
// the four categories (6 interests, 4 skills, 4 preferences, 3 lifestyle).
// Weight maps reference career identifiers from the catalog; absence means a
// zero contribution for that option.
func DefaultQuestions() []Question {
	return []Question{
		// interests
		{
			ID:       "int-1",
			Category: CategoryInterests,
			Text:     "Which field genuinely excites and interests you the most?",
			Options: []Option{
				{
					Text: "Technology, software & digital innovation",
					Weights: map[string]float64{
						"eng-software": 1.0, "eng-data-science": 1.0, "eng-ai-ml": 0.95, "eng-cyber-security": 0.9,
						"eng-it": 0.9, "eng-blockchain": 0.85, "eng-cloud-computing": 0.85,
					},
				},
				{
					Text: "Healthcare, medicine & patient care",
					Weights: map[string]float64{
						"med-mbbs": 1.0, "med-nursing": 0.95, "med-dentist": 0.9, "med-physiotherapy": 0.9,
						"med-pharmacy": 0.85, "med-veterinary": 0.8, "med-ayurveda": 0.8,
					},
				},
				{
					Text: "Business, finance & management",
					Weights: map[string]float64{
						"fin-chartered-accountant": 1.0, "mgmt-mba": 0.95, "fin-investment-banking": 0.9,
						"fin-company-secretary": 0.9, "mgmt-bba": 0.85,
					},
				},
				{
					Text: "Creative design, media & arts",
					Weights: map[string]float64{
						"des-architecture": 1.0, "des-interior": 0.95, "des-fashion": 0.95, "des-graphic-web": 0.9,
						"des-animation": 0.9, "des-photography": 0.85, "des-fine-arts": 0.85,
					},
				},
			},
		},
		{
			ID:       "int-2",
			Category: CategoryInterests,
			Text:     "Which type of work environment appeals to you most?",
			Options: []Option{
				{
					Text: "Research labs & scientific institutions",
					Weights: map[string]float64{
						"sci-biotechnology": 1.0, "sci-microbiology": 0.95, "sci-genetics": 0.9, "sci-chemistry": 0.9,
						"sci-physics": 0.85, "sci-marine-biology": 0.85,
					},
				},
				{
					Text: "Courtrooms, legal offices & justice system",
					Weights: map[string]float64{
						"law-lawyer": 1.0, "law-corporate": 0.95, "law-cyber": 0.9, "law-paralegal": 0.85,
						"law-judge": 0.8,
					},
				},
				{
					Text: "Outdoors, fields, farms & nature",
					Weights: map[string]float64{
						"agri-scientist": 1.0, "agri-horticulture": 0.95, "agri-forestry": 0.9, "sci-environmental": 0.9,
						"agri-organic-farming": 0.85, "voc-wildlife": 0.8,
					},
				},
				{
					Text: "Corporate offices & modern workplaces",
					Weights: map[string]float64{
						"eng-software": 0.9, "fin-chartered-accountant": 0.9, "mgmt-mba": 0.9,
						"hum-digital-marketing": 0.85, "eng-data-science": 0.9,
					},
				},
			},
		},
		{
			ID:       "int-3",
			Category: CategoryInterests,
			Text:     "What kind of problems do you enjoy solving the most?",
			Options: []Option{
				{
					Text: "Logical, analytical & numerical problems",
					Weights: map[string]float64{
						"fin-actuarial": 1.0, "sci-statistics": 0.95, "fin-quant-analyst": 0.9,
						"sci-mathematics": 0.9, "eng-data-science": 0.85,
					},
				},
				{
					Text: "Social issues, policy & governance",
					Weights: map[string]float64{
						"def-civil-services": 1.0, "hum-political-science": 0.9, "hum-social-work": 0.9,
						"hum-sociology": 0.85, "hum-public-policy": 0.85,
					},
				},
				{
					Text: "Creative expression & storytelling",
					Weights: map[string]float64{
						"hum-journalism": 1.0, "hum-content-writing": 0.95, "voc-film-direction": 0.9,
						"hum-mass-comm": 0.9, "hum-public-relations": 0.85,
					},
				},
				{
					Text: "Physical challenges & national security",
					Weights: map[string]float64{
						"def-army": 1.0, "def-navy": 0.95, "def-air-force": 0.95, "def-police": 0.9,
						"def-coast-guard": 0.85, "voc-fitness-trainer": 0.7,
					},
				},
			},
		},
		{
			ID:       "int-4",
			Category: CategoryInterests,
			Text:     "Which future-focused area excites you the most?",
			Options: []Option{
				{
					Text: "AI, robotics & emerging tech",
					Weights: map[string]float64{
						"eng-ai-ml": 1.0, "eng-robotics": 0.95, "eng-iot": 0.9, "eng-blockchain": 0.9,
						"eng-data-science": 0.85, "eng-cloud-computing": 0.8,
					},
				},
				{
					Text: "Sustainability & climate solutions",
					Weights: map[string]float64{
						"sci-environmental": 1.0, "agri-organic-farming": 0.9, "eng-renewable-energy": 0.9,
						"sci-ecology": 0.85, "agri-sustainable": 0.8,
					},
				},
				{
					Text: "Medical breakthroughs & biotechnology",
					Weights: map[string]float64{
						"sci-biotechnology": 1.0, "sci-genetics": 0.95, "sci-bioinformatics": 0.9,
						"med-biomedical": 0.9, "sci-biochemistry": 0.85,
					},
				},
				{
					Text: "Space exploration & astrophysics",
					Weights: map[string]float64{
						"avi-aerospace": 1.0, "sci-astrophysics": 0.95, "avi-aeronautical": 0.9,
						"sci-physics": 0.8, "eng-aerospace": 0.8,
					},
				},
			},
		},
		{
			ID:       "int-5",
			Category: CategoryInterests,
			Text:     "Which subject cluster do you naturally enjoy the most?",
			Options: []Option{
				{
					Text: "Maths, physics & computer science",
					Weights: map[string]float64{
						"eng-software": 1.0, "eng-electrical": 0.9, "eng-data-science": 0.9,
						"eng-mechanical": 0.85, "sci-physics": 0.85,
					},
				},
				{
					Text: "Biology, chemistry & life sciences",
					Weights: map[string]float64{
						"med-mbbs": 1.0, "sci-biotechnology": 0.95, "sci-microbiology": 0.95,
						"med-pharmacy": 0.9, "sci-genetics": 0.9,
					},
				},
				{
					Text: "Economics, business & commerce",
					Weights: map[string]float64{
						"fin-chartered-accountant": 1.0, "hum-economics": 0.95, "fin-investment-banking": 0.9,
						"mgmt-bba": 0.85, "fin-financial-analyst": 0.9,
					},
				},
				{
					Text: "History, languages & humanities",
					Weights: map[string]float64{
						"hum-history": 1.0, "hum-english-literature": 0.95, "hum-foreign-languages": 0.9,
						"hum-archaeology": 0.9, "hum-philosophy": 0.85,
					},
				},
			},
		},
		{
			ID:       "int-6",
			Category: CategoryInterests,
			Text:     "What kind of day-to-day work would you enjoy?",
			Options: []Option{
				{
					Text: "Teaching, mentoring & guiding students",
					Weights: map[string]float64{
						"edu-teacher": 1.0, "edu-professor": 0.95, "edu-special-education": 0.9,
						"edu-corporate-trainer": 0.85, "edu-education-counselor": 0.85,
					},
				},
				{
					Text: "Managing events, people & experiences",
					Weights: map[string]float64{
						"voc-event-management": 1.0, "voc-hotel-management": 0.95, "voc-travel-tourism": 0.9,
						"voc-flight-attendant": 0.85, "mgmt-mba": 0.8,
					},
				},
				{
					Text: "Designing visuals, products or spaces",
					Weights: map[string]float64{
						"des-architecture": 1.0, "des-interior": 0.95, "des-fashion": 0.95,
						"des-graphic-web": 0.9, "des-industrial": 0.85,
					},
				},
				{
					Text: "Investigating, researching & writing",
					Weights: map[string]float64{
						"hum-journalism": 1.0, "sci-research-scientist": 0.95, "law-corporate": 0.9,
						"hum-content-writing": 0.9, "hum-economics": 0.85,
					},
				},
			},
		},

		// skills
		{
			ID:       "skill-1",
			Category: CategorySkills,
			Text:     "Which describes your strongest natural skill?",
			Options: []Option{
				{
					Text: "Coding, technical problem solving & debugging",
					Weights: map[string]float64{
						"eng-software": 1.0, "eng-full-stack": 0.95, "eng-mobile-app": 0.9,
						"eng-game-dev": 0.9, "eng-devops": 0.85,
					},
				},
				{
					Text: "Communication, persuasion & public speaking",
					Weights: map[string]float64{
						"law-lawyer": 1.0, "hum-journalism": 0.95, "mgmt-mba": 0.9,
						"hum-public-relations": 0.9, "voc-anchor": 0.85,
					},
				},
				{
					Text: "Visual creativity & design sense",
					Weights: map[string]float64{
						"des-graphic-web": 1.0, "des-ux-ui": 0.95, "des-fashion": 0.9,
						"des-interior": 0.9, "des-photography": 0.85,
					},
				},
				{
					Text: "Empathy, patience & emotional understanding",
					Weights: map[string]float64{
						"hum-psychology": 1.0, "hum-counseling": 0.95, "hum-social-work": 0.95,
						"med-nursing": 0.9, "edu-special-education": 0.9,
					},
				},
			},
		},
		{
			ID:       "skill-2",
			Category: CategorySkills,
			Text:     "How would you rate your mathematical ability?",
			Options: []Option{
				{
					Text: "Excellent - love complex calculations & data",
					Weights: map[string]float64{
						"fin-actuarial": 1.0, "sci-statistics": 0.95, "fin-quant-analyst": 0.9,
						"sci-mathematics": 0.9, "eng-data-science": 0.85,
					},
				},
				{
					Text: "Good - comfortable with numbers",
					Weights: map[string]float64{
						"fin-chartered-accountant": 0.9, "eng-software": 0.8, "sci-physics": 0.8,
						"fin-investment-banking": 0.75, "eng-electrical": 0.75,
					},
				},
				{
					Text: "Average - can manage basic math",
					Weights: map[string]float64{
						"mgmt-bba": 0.7, "hum-journalism": 0.5, "des-architecture": 0.6,
						"med-nursing": 0.5, "hum-psychology": 0.5,
					},
				},
				{
					Text: "Not my strength",
					Weights: map[string]float64{
						"des-fashion": 0.4, "des-fine-arts": 0.3, "voc-acting": 0.3,
						"voc-music": 0.3, "hum-history": 0.4,
					},
				},
			},
		},
		{
			ID:       "skill-3",
			Category: CategorySkills,
			Text:     "How comfortable are you with science & lab work?",
			Options: []Option{
				{
					Text: "Very comfortable - love experiments & lab work",
					Weights: map[string]float64{
						"sci-chemistry": 1.0, "sci-biotechnology": 0.95, "sci-microbiology": 0.95,
						"sci-biochemistry": 0.9, "med-pharmacy": 0.85,
					},
				},
				{
					Text: "Comfortable - enjoy science concepts",
					Weights: map[string]float64{
						"sci-physics": 0.9, "med-mbbs": 0.8, "eng-biomedical": 0.8,
						"sci-environmental": 0.75, "sci-geology": 0.75,
					},
				},
				{
					Text: "Basic understanding only",
					Weights: map[string]float64{
						"eng-software": 0.5, "fin-chartered-accountant": 0.4, "mgmt-mba": 0.4,
						"law-lawyer": 0.3, "hum-journalism": 0.4,
					},
				},
				{
					Text: "Prefer non-science work",
					Weights: map[string]float64{
						"des-fashion": 0.3, "voc-acting": 0.2, "hum-history": 0.3,
						"des-fine-arts": 0.2, "voc-music": 0.2,
					},
				},
			},
		},
		{
			ID:       "skill-4",
			Category: CategorySkills,
			Text:     "How physically fit & active are you?",
			Options: []Option{
				{
					Text: "Very fit - excellent stamina & strength",
					Weights: map[string]float64{
						"def-army": 1.0, "def-navy": 0.95, "def-air-force": 0.95,
						"voc-fitness-trainer": 0.9, "voc-sports": 0.9, "voc-yoga": 0.8,
					},
				},
				{
					Text: "Good - regular exercise",
					Weights: map[string]float64{
						"med-physiotherapy": 0.8, "voc-dance": 0.8, "avi-pilot": 0.7,
						"def-police": 0.8, "voc-adventure-sports": 0.8,
					},
				},
				{
					Text: "Average fitness",
					Weights: map[string]float64{
						"med-mbbs": 0.6, "med-nursing": 0.6, "eng-civil": 0.6,
						"agri-scientist": 0.6, "edu-teacher": 0.5,
					},
				},
				{
					Text: "Prefer desk work",
					Weights: map[string]float64{
						"eng-software": 0.7, "fin-chartered-accountant": 0.7, "law-lawyer": 0.6,
						"des-graphic-web": 0.7, "hum-content-writing": 0.7,
					},
				},
			},
		},

		// preferences
		{
			ID:       "pref-1",
			Category: CategoryPreferences,
			Text:     "How important is job security to you?",
			Options: []Option{
				{
					Text: "Very important - strongly prefer government roles",
					Weights: map[string]float64{
						"def-civil-services": 1.0, "rail-railway-services": 0.95, "def-army": 0.9,
						"def-police": 0.9, "edu-government-teacher": 0.85,
					},
				},
				{
					Text: "Important - want a stable profession",
					Weights: map[string]float64{
						"fin-chartered-accountant": 0.9, "med-mbbs": 0.85, "law-lawyer": 0.8,
						"eng-software": 0.75, "edu-teacher": 0.8,
					},
				},
				{
					Text: "Moderately important - open to some risk",
					Weights: map[string]float64{
						"mgmt-mba": 0.8, "des-architecture": 0.7, "voc-event-management": 0.8,
						"voc-chef": 0.7, "hum-digital-marketing": 0.7,
					},
				},
				{
					Text: "Not a priority - okay with high risk",
					Weights: map[string]float64{
						"des-fine-arts": 0.9, "voc-acting": 0.95, "voc-music": 0.9,
						"des-fashion": 0.8, "voc-photographer": 0.8,
					},
				},
			},
		},
		{
			ID:       "pref-2",
			Category: CategoryPreferences,
			Text:     "How much work-life balance do you want?",
			Options: []Option{
				{
					Text: "Very high - want regular hours",
					Weights: map[string]float64{
						"edu-teacher": 0.9, "fin-bank-po": 0.85, "rail-railway-services": 0.85,
						"def-civil-services": 0.8, "edu-professor": 0.8,
					},
				},
				{
					Text: "Important but flexible",
					Weights: map[string]float64{
						"eng-software": 0.7, "fin-chartered-accountant": 0.7, "des-graphic-web": 0.7,
						"hum-content-writing": 0.75, "sci-research-scientist": 0.7,
					},
				},
				{
					Text: "Can work long hours if needed",
					Weights: map[string]float64{
						"med-mbbs": 0.9, "law-lawyer": 0.85, "fin-investment-banking": 0.9,
						"mgmt-mba": 0.8, "avi-pilot": 0.8,
					},
				},
				{
					Text: "Not a concern - passion over balance",
					Weights: map[string]float64{
						"des-fine-arts": 1.0, "voc-acting": 0.95, "hum-journalism": 0.9,
						"voc-film-direction": 0.9, "des-fashion": 0.85,
					},
				},
			},
		},
		{
			ID:       "pref-3",
			Category: CategoryPreferences,
			Text:     "How much travel would you like in your career?",
			Options: []Option{
				{
					Text: "A lot - want frequent travel",
					Weights: map[string]float64{
						"avi-pilot": 1.0, "voc-flight-attendant": 0.95, "avi-marine": 0.9,
						"voc-travel-tourism": 0.9, "def-navy": 0.8,
					},
				},
				{
					Text: "Some - occasional trips are fine",
					Weights: map[string]float64{
						"mgmt-mba": 0.8, "fin-investment-banking": 0.8, "eng-software": 0.7,
						"voc-event-management": 0.75, "hum-journalism": 0.7,
					},
				},
				{
					Text: "Minimal - mostly stay in one place",
					Weights: map[string]float64{
						"edu-teacher": 0.7, "med-mbbs": 0.7, "fin-chartered-accountant": 0.7,
						"law-lawyer": 0.7, "agri-scientist": 0.7,
					},
				},
				{
					Text: "None - prefer fully local work",
					Weights: map[string]float64{
						"rail-railway-services": 0.8, "def-police": 0.8, "agri-organic-farming": 0.8,
						"voc-carpentry": 0.7, "voc-local-shop": 0.9,
					},
				},
			},
		},
		{
			ID:       "pref-4",
			Category: CategoryPreferences,
			Text:     "How do you feel about hands-on manual work?",
			Options: []Option{
				{
					Text: "Love it - prefer very practical work",
					Weights: map[string]float64{
						"voc-chef": 1.0, "voc-carpentry": 0.95, "voc-electrician": 0.95,
						"voc-plumbing": 0.95, "eng-mechanical": 0.8, "voc-makeup": 0.9,
					},
				},
				{
					Text: "Open to it - enjoy some hands-on tasks",
					Weights: map[string]float64{
						"med-dentist": 0.9, "med-surgeon": 0.85, "des-sculpture": 0.9,
						"eng-automobile": 0.8, "agri-horticulture": 0.8,
					},
				},
				{
					Text: "Prefer mostly mental/desk work",
					Weights: map[string]float64{
						"eng-software": 0.6, "fin-chartered-accountant": 0.5, "law-lawyer": 0.5,
						"hum-journalism": 0.6, "mgmt-mba": 0.5,
					},
				},
				{
					Text: "Want purely intellectual work",
					Weights: map[string]float64{
						"eng-data-science": 0.7, "fin-actuarial": 0.8, "sci-mathematics": 0.8,
						"hum-philosophy": 0.9, "sci-theoretical-physics": 0.9,
					},
				},
			},
		},

		// lifestyle
		{
			ID:       "life-1",
			Category: CategoryLifestyle,
			Text:     "How important is a very high salary to you?",
			Options: []Option{
				{
					Text: "Top priority - want maximum earnings",
					Weights: map[string]float64{
						"fin-investment-banking": 1.0, "avi-pilot": 0.95, "eng-software": 0.9,
						"med-surgeon": 0.9, "fin-actuarial": 0.85,
					},
				},
				{
					Text: "Important - need good compensation",
					Weights: map[string]float64{
						"fin-chartered-accountant": 0.9, "eng-data-science": 0.85, "law-lawyer": 0.85,
						"mgmt-mba": 0.85, "med-mbbs": 0.8,
					},
				},
				{
					Text: "Moderate - decent salary is enough",
					Weights: map[string]float64{
						"edu-teacher": 0.7, "hum-journalism": 0.65, "des-graphic-web": 0.7,
						"med-nursing": 0.7, "eng-civil": 0.7,
					},
				},
				{
					Text: "Not a priority - passion over money",
					Weights: map[string]float64{
						"des-fine-arts": 0.9, "hum-social-work": 0.9, "voc-ngo": 0.95,
						"hum-philosophy": 0.85, "voc-artist": 0.9,
					},
				},
			},
		},
		{
			ID:       "life-2",
			Category: CategoryLifestyle,
			Text:     "How comfortable are you with high-pressure situations?",
			Options: []Option{
				{
					Text: "Thrive in high-pressure environments",
					Weights: map[string]float64{
						"med-surgeon": 1.0, "def-army": 0.95, "avi-pilot": 0.95,
						"fin-investment-banking": 0.9, "def-air-force": 0.9,
					},
				},
				{
					Text: "Can handle pressure when required",
					Weights: map[string]float64{
						"med-mbbs": 0.85, "law-lawyer": 0.85, "mgmt-mba": 0.8,
						"eng-cyber-security": 0.8, "hum-journalism": 0.8,
					},
				},
				{
					Text: "Prefer moderate stress levels",
					Weights: map[string]float64{
						"eng-software": 0.7, "des-architecture": 0.7, "fin-chartered-accountant": 0.7,
						"edu-teacher": 0.7, "sci-research-scientist": 0.7,
					},
				},
				{
					Text: "Prefer low-stress work",
					Weights: map[string]float64{
						"edu-librarian": 0.9, "hum-content-writing": 0.8, "agri-organic-farming": 0.8,
						"des-graphic-web": 0.7, "sci-botany": 0.8,
					},
				},
			},
		},
		{
			ID:       "life-3",
			Category: CategoryLifestyle,
			Text:     "How important is making a social impact to you?",
			Options: []Option{
				{
					Text: "Extremely important - want to change society",
					Weights: map[string]float64{
						"hum-social-work": 1.0, "def-civil-services": 0.95, "edu-teacher": 0.9,
						"med-mbbs": 0.85, "hum-ngo": 0.95,
					},
				},
				{
					Text: "Important - want meaningful work",
					Weights: map[string]float64{
						"med-nursing": 0.85, "law-lawyer": 0.8, "sci-environmental": 0.85,
						"hum-journalism": 0.8, "edu-special-education": 0.85,
					},
				},
				{
					Text: "Nice to have but not essential",
					Weights: map[string]float64{
						"eng-software": 0.6, "fin-chartered-accountant": 0.5, "des-architecture": 0.65,
						"mgmt-bba": 0.6, "des-fashion": 0.5,
					},
				},
				{
					Text: "Not a priority - focus on personal growth",
					Weights: map[string]float64{
						"fin-investment-banking": 0.5, "voc-acting": 0.6, "des-fine-arts": 0.7,
						"voc-music": 0.7, "des-photography": 0.6,
					},
				},
			},
		},
	}
}

// DefaultBank builds the production question bank. It panics only if the
// built-in data above is malformed, which the bank tests guard against.
func DefaultBank() *Bank {
	return MustNewBank(DefaultQuestions())
}
