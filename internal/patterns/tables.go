package patterns

import "regexp"

// LibraryVersion identifies the current table revision. Bump it whenever
// a table or regex changes, so stored extraction results can be traced
// back to the vocabulary that produced them.
const LibraryVersion = "2026.08"

// Default returns the built-in pattern library. Tables are English-first
// with French aliases, since the corpus this library was tuned on mixes
// both.
func Default() *Library {
	l := &Library{
		Version: LibraryVersion,

		Skills: []SkillEntry{
			{Canonical: "Python", Variants: []string{"python"}},
			{Canonical: "Java", Variants: []string{"java"}},
			{Canonical: "JavaScript", Variants: []string{"javascript"}},
			{Canonical: "TypeScript", Variants: []string{"typescript"}},
			{Canonical: "C++", Variants: []string{"c++"}},
			{Canonical: "C#", Variants: []string{"c#"}},
			{Canonical: "Go", Variants: []string{"go", "golang"}},
			{Canonical: "Rust", Variants: []string{"rust"}},
			{Canonical: "R", Variants: []string{"r"}},
			{Canonical: "SQL", Variants: []string{"sql"}},
			{Canonical: "NoSQL", Variants: []string{"nosql"}},
			{Canonical: "PostgreSQL", Variants: []string{"postgresql", "postgres"}},
			{Canonical: "MySQL", Variants: []string{"mysql"}},
			{Canonical: "MongoDB", Variants: []string{"mongodb"}},
			{Canonical: "Redis", Variants: []string{"redis"}},
			{Canonical: "Machine Learning", Variants: []string{"machine learning", "machine-learning", "ml"}},
			{Canonical: "Deep Learning", Variants: []string{"deep learning", "deep-learning"}},
			{Canonical: "Artificial Intelligence", Variants: []string{"artificial intelligence", "ai", "intelligence artificielle"}},
			{Canonical: "TensorFlow", Variants: []string{"tensorflow"}},
			{Canonical: "PyTorch", Variants: []string{"pytorch"}},
			{Canonical: "Scikit-learn", Variants: []string{"scikit-learn", "scikit learn", "sklearn"}},
			{Canonical: "Keras", Variants: []string{"keras"}},
			{Canonical: "Pandas", Variants: []string{"pandas"}},
			{Canonical: "NumPy", Variants: []string{"numpy"}},
			{Canonical: "Matplotlib", Variants: []string{"matplotlib"}},
			{Canonical: "Seaborn", Variants: []string{"seaborn"}},
			{Canonical: "Apache Spark", Variants: []string{"apache spark", "spark", "pyspark"}},
			{Canonical: "Hadoop", Variants: []string{"hadoop"}},
			{Canonical: "Kafka", Variants: []string{"kafka"}},
			{Canonical: "Apache Airflow", Variants: []string{"apache airflow", "airflow"}},
			{Canonical: "AWS", Variants: []string{"aws", "amazon web services"}},
			{Canonical: "Azure", Variants: []string{"azure"}},
			{Canonical: "GCP", Variants: []string{"gcp", "google cloud"}},
			{Canonical: "Docker", Variants: []string{"docker"}},
			{Canonical: "Kubernetes", Variants: []string{"kubernetes", "k8s"}},
			{Canonical: "Terraform", Variants: []string{"terraform"}},
			{Canonical: "Ansible", Variants: []string{"ansible"}},
			{Canonical: "Jenkins", Variants: []string{"jenkins"}},
			{Canonical: "CI/CD", Variants: []string{"ci/cd", "cicd", "ci-cd"}},
			{Canonical: "Git", Variants: []string{"git"}},
			{Canonical: "GitHub", Variants: []string{"github"}},
			{Canonical: "GitLab", Variants: []string{"gitlab"}},
			{Canonical: "Linux", Variants: []string{"linux"}},
			{Canonical: "Bash", Variants: []string{"bash"}},
			{Canonical: "React", Variants: []string{"react", "react.js", "reactjs"}},
			{Canonical: "Vue", Variants: []string{"vue", "vue.js", "vuejs"}},
			{Canonical: "Angular", Variants: []string{"angular"}},
			{Canonical: "Node.js", Variants: []string{"node.js", "nodejs"}},
			{Canonical: "Django", Variants: []string{"django"}},
			{Canonical: "Flask", Variants: []string{"flask"}},
			{Canonical: "FastAPI", Variants: []string{"fastapi"}},
			{Canonical: "Power BI", Variants: []string{"power bi", "powerbi"}},
			{Canonical: "Tableau", Variants: []string{"tableau"}},
			{Canonical: "Looker", Variants: []string{"looker"}},
			{Canonical: "Excel", Variants: []string{"excel"}},
			{Canonical: "MLOps", Variants: []string{"mlops"}},
			{Canonical: "MLflow", Variants: []string{"mlflow"}},
			{Canonical: "Kubeflow", Variants: []string{"kubeflow"}},
			{Canonical: "Agile", Variants: []string{"agile"}},
			{Canonical: "Scrum", Variants: []string{"scrum"}},
			{Canonical: "Kanban", Variants: []string{"kanban"}},
		},

		Titles: []string{
			"data scientist", "data engineer", "data analyst", "machine learning engineer",
			"ml engineer", "software engineer", "backend developer", "frontend developer",
			"full stack developer", "fullstack developer", "devops engineer",
			"cloud engineer", "product manager", "développeur", "ingénieur",
		},

		SenioritySenior: []string{"senior", "sénior", "experienced", "expérimenté", "expert", "lead "},
		SeniorityJunior: []string{"junior", "débutant", "entry level", "entry-level", "graduate", "stagiaire", "intern "},
		SeniorityMid:    []string{"mid-level", "mid level", "intermediate", "intermédiaire", "confirmé"},

		RequiredMarkers: []string{
			"required skills", "must have", "requirements", "mandatory",
			"compétences techniques requises", "compétences requises",
			"requis", "obligatoire", "nécessaire",
		},
		OptionalMarkers: []string{
			"nice to have", "nice-to-have", "preferred skills", "preferred",
			"appreciated", "optional", "bonus",
			"compétences appréciées", "souhaitable", "apprécié", "optionnel",
		},
		RequiredEndMarkers: []string{
			"nice to have", "nice-to-have", "preferred", "bonus", "soft skills",
			"languages", "benefits", "compétences appréciées", "langues", "avantages",
		},
		OptionalEndMarkers: []string{
			"soft skills", "languages", "benefits", "langues", "avantages",
		},
		RequiredContext: []string{
			"must have", "mandatory", "essential", "proficiency", "expertise",
			"requis", "obligatoire", "nécessaire", "essentiel", "maîtrise",
		},
		OptionalContext: []string{
			"nice to have", "preferred", "bonus", "appreciated", "optional",
			"souhaitable", "apprécié", "optionnel",
		},
		CoreSkills: []string{
			"python", "sql", "scikit learn", "tensorflow", "pytorch",
			"apache spark", "hadoop", "postgresql", "mongodb", "git",
		},

		Languages: []LanguageEntry{
			{Name: "English", Keywords: []string{"english", "anglais", "anglophone"}},
			{Name: "French", Keywords: []string{"french", "français", "francais"}},
			{Name: "Spanish", Keywords: []string{"spanish", "espagnol"}},
			{Name: "German", Keywords: []string{"german", "allemand", "deutsch"}},
			{Name: "Italian", Keywords: []string{"italian", "italien"}},
			{Name: "Chinese", Keywords: []string{"chinese", "chinois", "mandarin"}},
		},
		DefaultLanguage: "French",

		Locations: []string{
			"paris", "lyon", "marseille", "toulouse", "bordeaux", "nantes",
			"lille", "remote", "télétravail", "hybrid", "hybride",
		},

		Contracts: []ContractEntry{
			{Type: "CDI", Keywords: []string{"cdi", "permanent"}},
			{Type: "CDD", Keywords: []string{"cdd", "fixed-term", "temporary", "temporaire"}},
			{Type: "STAGE", Keywords: []string{"internship", "stagiaire", "stage"}},
			{Type: "ALTERNANCE", Keywords: []string{"alternance", "apprentissage", "apprenticeship", "work-study"}},
			{Type: "FREELANCE", Keywords: []string{"freelance", "contractor", "indépendant"}},
		},
		DefaultContract: "CDI",

		Stopwords: stopwordSet(
			"avec", "dans", "pour", "sont", "cette", "plus", "tous", "toutes",
			"vous", "nous", "votre", "notre", "leur", "ainsi", "être", "fait",
			"comme", "aussi", "sans", "très", "entre", "chez",
			"with", "that", "this", "from", "your", "will", "have", "been",
			"they", "their", "than", "then", "them", "these", "those", "what",
			"when", "where", "which", "would", "there", "also", "into", "such",
			"each", "only", "other", "about", "over", "more", "most", "some",
			"must", "well", "while", "within", "able", "using", "based",
			"least", "years", "experience", "skills", "strong",
		),

		SoftSkills: []KeywordGroup{
			{Name: "teamwork", Keywords: []string{"teamwork", "team work", "collaboration", "collaborative", "travail d'équipe", "esprit d'équipe", "coopération"}},
			{Name: "communication", Keywords: []string{"communication", "communicate", "communiquer"}},
			{Name: "leadership", Keywords: []string{"leadership", "mentoring", "diriger", "encadrer", "encadrement"}},
			{Name: "autonomy", Keywords: []string{"autonomous", "autonomy", "independent", "autonome", "autonomie", "indépendant"}},
			{Name: "adaptability", Keywords: []string{"adaptable", "adaptability", "flexible", "versatile", "polyvalent", "adaptabilité"}},
			{Name: "creativity", Keywords: []string{"creative", "creativity", "innovation", "innovative", "créatif", "créativité", "innovant"}},
			{Name: "problem solving", Keywords: []string{"problem solving", "problem-solving", "résolution de problèmes", "analytical", "analytique"}},
			{Name: "organization", Keywords: []string{"organized", "organization", "planning", "time management", "organisé", "organisation", "planification", "rigueur", "rigoureux"}},
			{Name: "motivation", Keywords: []string{"motivated", "motivation", "determined", "driven", "motivé", "déterminé", "persévérant"}},
		},

		PositiveKeywords: []string{
			"passionate", "passionné", "motivated", "motivé", "enthusiastic",
			"enthousiaste", "excited", "eager", "interested", "intéressé",
			"ambition", "challenge", "défi", "learn", "apprendre", "grow",
			"progresser", "évoluer", "develop", "développer", "contribute",
			"contribuer", "apporter", "participer", "collaborer",
		},
		NegativeKeywords: []string{
			"urgent", "asap", "any job", "any position", "n'importe quel",
		},
		LeadershipKeywords: []string{
			"manager", "management", "lead ", "team lead", "head of", "chef",
			"responsable", "directeur", "director", "supervise", "supervised",
			"coordinate", "coordinated", "coordonner", "mentor", "encadré",
			"piloté", "pilot", "équipe de",
		},
		LeadershipTitles: []string{
			"manager", "lead", "head", "chief", "director", "chef",
			"responsable", "directeur", "directrice",
		},
		Salutations: []string{
			"dear", "hello", "madame", "monsieur", "to whom it may concern",
			"objet", "hiring team",
		},
		Closings: []string{
			"sincerely", "regards", "best regards", "respectfully", "yours",
			"cordialement", "respectueusement", "sincères salutations",
		},
		ResumeSections: []KeywordGroup{
			{Name: "experience", Keywords: []string{"experience", "work history", "employment", "expérience", "parcours"}},
			{Name: "education", Keywords: []string{"education", "formation", "studies", "études", "diplôme"}},
			{Name: "skills", Keywords: []string{"skills", "compétences", "technologies", "technical skills"}},
			{Name: "languages", Keywords: []string{"languages", "langues"}},
		},

		ExperienceHeaders: []string{
			"work experience", "professional experience", "employment history",
			"experience", "expérience professionnelle", "expérience",
			"parcours professionnel", "parcours",
		},
		EducationHeaders: []string{
			"education", "academic background", "formation", "études",
			"diplômes", "diplôme", "éducation",
		},

		Email:     regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
		PhoneFR:   regexp.MustCompile(`\b0[1-9](?:[ .\-]?\d{2}){4}\b`),
		PhoneIntl: regexp.MustCompile(`\+\d{1,3}[ .\-]?\d{1,4}[ .\-]?\d{2,4}[ .\-]?\d{2,9}`),

		ExperienceEntry: []*regexp.Regexp{
			regexp.MustCompile(`([A-ZÀ-Þ][^.\n]{10,60}?)\s*[-–—]\s*(\d{4}|\d{1,2}/\d{4})(?:\s*[-–—]\s*(\d{4}|\d{1,2}/\d{4}|[Pp]resent|[Pp]résent|aujourd'hui|current))?`),
			regexp.MustCompile(`([A-ZÀ-Þ][^.\n]{10,60}?)\s*\((\d{4})\s*[-–]\s*(\d{4}|[Pp]resent|[Pp]résent)\)`),
		},
		DegreeEntry: []*regexp.Regexp{
			regexp.MustCompile(`(?:Master|Bachelor|Licence|Doctorat|PhD|Ph\.D|MBA|Ingénieur|Engineering degree|École|University|Université|BSc|MSc|B\.S\.|M\.S\.)[^.\n]{0,100}`),
		},
		ExperienceMin: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)\s*\+?\s*years?\b`),
			regexp.MustCompile(`(\d+)\s*\+?\s*ans\b`),
			regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\s*(?:years?|ans?)`),
			regexp.MustCompile(`at least\s*(\d+)\s*(?:years?|ans?)`),
			regexp.MustCompile(`au moins\s*(\d+)\s*ans?`),
		},
		// salary patterns run against lowercased text with spaces removed
		SalaryRange:   regexp.MustCompile(`(\d+)k?€?-(\d+)k?€`),
		SalaryPerYear: regexp.MustCompile(`(\d+)k?€?/an`),
		SalaryLabel:   regexp.MustCompile(`salai?re?:(\d+)`),
		Year:          regexp.MustCompile(`\d{4}`),
		KeywordWord:   regexp.MustCompile(`\b[a-zà-ÿ]{4,}\b`),
		NamePrefixStrips: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(?:CV|RESUME|CURRICULUM VITAE)\s*[|:\-–]\s*`),
			regexp.MustCompile(`\s*[|]\s*.*$`),
		},
		NameAllCaps:   regexp.MustCompile(`^[A-ZÀ-ÞŒ][A-ZÀ-ÞŒ' \-]+$`),
		NameTitleCase: regexp.MustCompile(`^[A-ZÀ-Þ][a-zà-þÿ'\-]+(?:\s+[A-ZÀ-Þ][A-Za-zà-þÿ'\-]+){1,3}$`),
	}
	l.compileSkills()
	return l
}

func stopwordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
