package content

var stats = []Stat{
	{Icon: "🎓", Value: "15,000+", Label: "Students Trained"},
	{Icon: "🎯", Value: "94%", Label: "Placement Rate"},
	{Icon: "🏆", Value: "12+", Label: "Years of Excellence"},
	{Icon: "🏢", Value: "200+", Label: "Hiring Partners"},
}

var services = []Service{
	{Icon: "🎓", Title: "Technical Training", Description: "Industry-aligned curriculum designed by experts with hands-on projects and real-world scenarios."},
	{Icon: "🎯", Title: "Placement Assistance", Description: "Dedicated placement cell with 200+ hiring partners for guaranteed interview opportunities."},
	{Icon: "💼", Title: "Industry Projects", Description: "Work on live projects from partner companies to build a portfolio that stands out."},
	{Icon: "🏢", Title: "Internship Programs", Description: "Paid internship opportunities with stipends at leading tech companies."},
	{Icon: "👥", Title: "Corporate Training", Description: "Customized upskilling programs for enterprises looking to enhance team capabilities."},
	{Icon: "🚀", Title: "Career Guidance", Description: "One-on-one mentorship and career counseling from industry veterans."},
}

var courses = []Course{
	{
		Icon:        "💻",
		Title:       "Software Development",
		Duration:    "6 Months",
		Tools:       []string{"Java", "Python", "C++", "Git", "DSA"},
		Outcomes:    []string{"Software Engineer", "Backend Developer", "System Architect"},
		Description: "Master core programming concepts, data structures, and software design patterns.",
	},
	{
		Icon:        "🌐",
		Title:       "Web Development",
		Duration:    "4 Months",
		Tools:       []string{"React", "Node.js", "MongoDB", "TypeScript", "Next.js"},
		Outcomes:    []string{"Full Stack Developer", "Frontend Engineer", "Web Architect"},
		Description: "Build modern, responsive web applications from frontend to backend.",
	},
	{
		Icon:        "🤖",
		Title:       "AI / ML",
		Duration:    "6 Months",
		Tools:       []string{"Python", "TensorFlow", "PyTorch", "Scikit-learn", "OpenCV"},
		Outcomes:    []string{"ML Engineer", "AI Developer", "Data Scientist"},
		Description: "Deep dive into machine learning algorithms, neural networks, and AI systems.",
	},
	{
		Icon:        "📊",
		Title:       "Data Science",
		Duration:    "5 Months",
		Tools:       []string{"Python", "R", "SQL", "Tableau", "Power BI"},
		Outcomes:    []string{"Data Analyst", "Data Engineer", "Business Analyst"},
		Description: "Extract insights from complex datasets and drive data-informed decisions.",
	},
	{
		Icon:        "🔒",
		Title:       "Cybersecurity",
		Duration:    "4 Months",
		Tools:       []string{"Kali Linux", "Wireshark", "Metasploit", "Burp Suite", "OWASP"},
		Outcomes:    []string{"Security Analyst", "Penetration Tester", "SOC Analyst"},
		Description: "Learn ethical hacking, threat analysis, and security best practices.",
	},
	{
		Icon:        "☁️",
		Title:       "Cloud & DevOps",
		Duration:    "4 Months",
		Tools:       []string{"AWS", "Docker", "Kubernetes", "Jenkins", "Terraform"},
		Outcomes:    []string{"DevOps Engineer", "Cloud Architect", "SRE"},
		Description: "Master cloud infrastructure, CI/CD pipelines, and container orchestration.",
	},
}

var companies = []string{
	"Google", "Microsoft", "Amazon", "Meta", "Apple", "Netflix",
	"NVIDIA", "Uber", "Stripe", "Adobe", "Salesforce", "Oracle",
}

var testimonials = []Testimonial{
	{
		Name:    "Rahul Sharma",
		Course:  "Full Stack Development",
		Company: "Google",
		Role:    "Software Engineer",
		Quote:   "The hands-on approach and real-world projects prepared me perfectly for my role at Google. The mentors here are exceptional.",
	},
	{
		Name:    "Priya Patel",
		Course:  "Data Science",
		Company: "Microsoft",
		Role:    "Data Scientist",
		Quote:   "From zero coding knowledge to landing my dream job - this institute made it possible. The curriculum is top-notch.",
	},
	{
		Name:    "Amit Kumar",
		Course:  "Cybersecurity",
		Company: "Amazon",
		Role:    "Security Engineer",
		Quote:   "The practical labs and ethical hacking exercises gave me skills that directly translated to my current role.",
	},
	{
		Name:    "Sneha Reddy",
		Course:  "AI/ML",
		Company: "NVIDIA",
		Role:    "ML Engineer",
		Quote:   "The deep learning projects and GPU lab access here are unmatched. I was job-ready from day one.",
	},
	// Imported from a partial data dump; required fields never arrived.
	{
		Name:   "Omkar Dharwadkar",
		Course: "web",
	},
	{
		Name:    "xyx fellow",
		Course:  "web",
		Company: "ntg",
	},
}
