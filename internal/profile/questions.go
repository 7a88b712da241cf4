package profile

// questions holds the Persian intake question for every required field. The
// conversation engine presents them to the applicant and the single-field
// model prompt reuses the exact same wording.
var questions = map[Field]string{
	FieldFirstName:       "لطفاً نام خود را بگویید:",
	FieldLastName:        "لطفاً نام خانوادگی خود را بگویید:",
	FieldAge:             "سن شما چند سال است؟",
	FieldGender:          "جنسیت شما چیست؟ (مرد/زن)",
	FieldExperienceYears: "چند سال سابقه کار دارید؟",
	FieldCity:            "در کدام شهر ساکن هستید؟",
	FieldSkills:          "مهارت‌های اصلی و فنی شما چیست؟ (مثلاً: Python، SQL، طراحی وب)",
	FieldMilitaryStatus:  "وضعیت سربازی شما چگونه است؟ (دارد/ندارد/معاف/در حال خدمت)",
	FieldInterests:       "به چه زمینه‌ها و موضوعاتی علاقه دارید؟ (مثلاً: هوش مصنوعی، توسعه نرم‌افزار، تحلیل داده)",
}

// Question returns the intake question for the field.
func (f Field) Question() string {
	return questions[f]
}

// Known reports whether f is one of the required profile fields.
func (f Field) Known() bool {
	_, ok := questions[f]
	return ok
}
