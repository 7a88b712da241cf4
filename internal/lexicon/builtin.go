package lexicon

// Built-in defaults. The name sets are extended at startup from the optional
// external CSV; the skill and category tables are fixed.

var builtinMaleNames = []string{
	"علی", "حسین", "محمد", "رضا", "مهدی", "امیر", "حمید", "سعید", "هادی", "حامد",
	"وحید", "مصطفی", "حسن", "مجتبی", "مجید", "میلاد", "احمد", "کاظم", "بهزاد",
	"روح الله", "یاسر", "محسن", "نیما", "کیان", "پارسا",
}

var builtinFemaleNames = []string{
	"زهرا", "فاطمه", "مریم", "سارا", "سمیرا", "مینا", "مهسا", "نازنین", "الهام",
	"پریسا", "نیلوفر", "ریحانه", "نگار", "هدیه", "راضیه", "معصومه", "شبنم", "ثنا",
	"ملیکا", "حدیث", "حدیثه", "فرشته", "سوگند", "ستایش", "نرگس", "آتنا", "آیناز",
}

func builtinSkillSynonyms() []SkillEntry {
	return []SkillEntry{
		{Label: "Python", Synonyms: []string{"python", "پایتون"}},
		{Label: "SQL", Synonyms: []string{"sql", "اس کیو ال", "اس کیوال"}},
		{Label: "یادگیری ماشین", Synonyms: []string{"machine learning", "ml", "یادگیری ماشین", "ماشین لرنینگ"}},
		{Label: "یادگیری عمیق", Synonyms: []string{"deep learning", "دیپ لرنینگ", "یادگیری عمیق"}},
		{Label: "هوش مصنوعی", Synonyms: []string{"ai", "هوش مصنوعی"}},
		{Label: "Excel", Synonyms: []string{"excel", "اکسل"}},
		{Label: "Power BI", Synonyms: []string{"power bi", "powerbi", "پاور بی آی", "پاور بی ای"}},
		{Label: "PLC", Synonyms: []string{"plc", "پی ال سی"}},
		{Label: "JavaScript", Synonyms: []string{"javascript", "جاوااسکریپت", "js"}},
		{Label: "React", Synonyms: []string{"react", "ری اکت"}},
		{Label: "Node.js", Synonyms: []string{"node", "nodejs", "node.js"}},
		{Label: "Vue.js", Synonyms: []string{"vue", "vuejs", "vue.js"}},
		{Label: "Angular", Synonyms: []string{"angular"}},
		{Label: "Docker", Synonyms: []string{"docker", "داکر"}},
		{Label: "Kubernetes", Synonyms: []string{"kubernetes", "k8s"}},
		{Label: "AWS", Synonyms: []string{"aws", "amazon web services"}},
		{Label: "Azure", Synonyms: []string{"azure", "مایکروسافت آزور"}},
		{Label: "Git", Synonyms: []string{"git", "گیت"}},
		{Label: "Linux", Synonyms: []string{"linux", "لینوکس"}},
		{Label: "Java", Synonyms: []string{"java", "جاوا"}},
		{Label: "C++", Synonyms: []string{"c++", "سی پلاس پلاس"}},
		{Label: "C#", Synonyms: []string{"c#", "سی شارپ"}},
		{Label: "PHP", Synonyms: []string{"php", "پی اچ پی"}},
		{Label: "WordPress", Synonyms: []string{"wordpress", "وردپرس"}},
		{Label: "Photoshop", Synonyms: []string{"photoshop", "فتوشاپ"}},
		{Label: "UI/UX Design", Synonyms: []string{"ui", "ux", "design", "طراحی"}},
		{Label: "Project Management", Synonyms: []string{"project management", "مدیریت پروژه"}},
		{Label: "Data Analysis", Synonyms: []string{"data analysis", "تحلیل داده"}},
		{Label: "Business Intelligence", Synonyms: []string{"business intelligence", "هوش تجاری"}},
	}
}

func builtinInterestCategories() []InterestCategory {
	return []InterestCategory{
		{Label: "هوش مصنوعی و یادگیری ماشین", Keywords: []string{"هوش مصنوعی", "یادگیری ماشین", "ai", "machine learning", "deep learning"}},
		{Label: "برنامه نویسی و توسعه نرم افزار", Keywords: []string{"برنامه نویسی", "توسعه نرم افزار", "programming", "software development", "coding"}},
		{Label: "تحلیل داده و داده کاوی", Keywords: []string{"تحلیل داده", "داده کاوی", "data analysis", "data mining", "big data"}},
		{Label: "طراحی و توسعه وب", Keywords: []string{"طراحی وب", "توسعه وب", "web design", "web development", "frontend", "backend"}},
		{Label: "مدیریت پروژه و کسب و کار", Keywords: []string{"مدیریت پروژه", "کسب و کار", "project management", "business", "استارتاپ"}},
		{Label: "امنیت اطلاعات", Keywords: []string{"امنیت", "امنیت اطلاعات", "cybersecurity", "security", "حریم خصوصی"}},
		{Label: "اینترنت اشیا", Keywords: []string{"اینترنت اشیا", "iot", "internet of things"}},
		{Label: "رباتیک و اتوماسیون", Keywords: []string{"رباتیک", "اتوماسیون", "robotics", "automation"}},
		{Label: "بلاکچین و ارز دیجیتال", Keywords: []string{"بلاکچین", "ارز دیجیتال", "blockchain", "cryptocurrency"}},
		{Label: "رایانش ابری", Keywords: []string{"رایانش ابری", "cloud computing", "cloud"}},
		{Label: "توسعه موبایل", Keywords: []string{"توسعه موبایل", "mobile development", "android", "ios"}},
		{Label: "بازی سازی", Keywords: []string{"بازی سازی", "game development", "gaming"}},
	}
}
