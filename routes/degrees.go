package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nextstep-career-api/internal/ai"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/models"
	"nextstep-career-api/utils"
)

// DegreeMapping connects one degree program to the careers it opens up.
type DegreeMapping struct {
	DirectCareers    []string `json:"direct_careers"`
	AlternativePaths []string `json:"alternative_paths"`
	SkillsGap        []string `json:"skills_gap"`
}

// degreeMappings is the curated catalog served by the degree-programs
// endpoint, grouped by field category.
var degreeMappings = map[string]map[string]DegreeMapping{
	"stem_fields": {
		"Computer Science": {
			DirectCareers: []string{
				"Software Developer/Engineer",
				"Data Scientist",
				"AI/Machine Learning Engineer",
				"Cybersecurity Specialist",
				"DevOps Engineer",
				"Product Manager (Technical)",
				"Research Scientist",
			},
			AlternativePaths: []string{
				"Digital Marketing Specialist",
				"Technical Writer",
				"IT Consultant",
				"Startup Founder",
				"Technical Sales Engineer",
			},
			SkillsGap: []string{
				"Industry-specific domain knowledge",
				"Soft skills and communication",
				"Project management",
				"Cloud platforms proficiency",
				"Advanced system design",
			},
		},
		"Data Science/Statistics": {
			DirectCareers: []string{
				"Data Scientist",
				"Data Analyst",
				"Business Intelligence Analyst",
				"Research Analyst",
				"Quantitative Analyst",
				"Machine Learning Engineer",
			},
			AlternativePaths: []string{
				"Product Manager",
				"Management Consultant",
				"Risk Analyst",
				"Marketing Analyst",
				"Operations Research Analyst",
			},
			SkillsGap: []string{
				"Domain expertise in target industry",
				"Advanced programming skills",
				"Big data technologies",
				"Data visualization tools",
				"Business communication skills",
			},
		},
		"Engineering (General)": {
			DirectCareers: []string{
				"Design Engineer",
				"Project Engineer",
				"Systems Engineer",
				"Quality Engineer",
				"Manufacturing Engineer",
				"Research & Development Engineer",
			},
			AlternativePaths: []string{
				"Technical Product Manager",
				"Engineering Consultant",
				"Patent Attorney",
				"Technical Sales",
				"Startup Founder",
			},
			SkillsGap: []string{
				"Industry certifications",
				"Project management",
				"Modern software tools",
				"Business acumen",
				"Leadership skills",
			},
		},
	},
	"business_fields": {
		"Business Administration/Management": {
			DirectCareers: []string{
				"Business Analyst",
				"Project Manager",
				"Operations Manager",
				"HR Manager",
				"Marketing Manager",
				"Financial Analyst",
			},
			AlternativePaths: []string{
				"Management Consultant",
				"Product Manager",
				"Entrepreneur",
				"Sales Manager",
				"Business Development",
			},
			SkillsGap: []string{
				"Industry-specific knowledge",
				"Advanced analytics",
				"Digital marketing",
				"Data analysis tools",
				"Technical literacy",
			},
		},
		"Economics": {
			DirectCareers: []string{
				"Economic Analyst",
				"Financial Analyst",
				"Policy Analyst",
				"Research Economist",
				"Market Research Analyst",
			},
			AlternativePaths: []string{
				"Data Scientist",
				"Investment Banking",
				"Management Consultant",
				"Business Development",
				"Government Positions",
			},
			SkillsGap: []string{
				"Programming (Python/R)",
				"Advanced statistical software",
				"Database management",
				"Financial modeling",
				"Industry regulations",
			},
		},
		"Marketing": {
			DirectCareers: []string{
				"Digital Marketing Specialist",
				"Brand Manager",
				"Content Marketing Manager",
				"Social Media Manager",
				"Marketing Analyst",
			},
			AlternativePaths: []string{
				"Product Manager",
				"UX Researcher",
				"Business Development",
				"Sales Manager",
				"PR Specialist",
			},
			SkillsGap: []string{
				"Data analytics and metrics",
				"Marketing automation tools",
				"SEO/SEM expertise",
				"A/B testing",
				"Customer psychology",
			},
		},
	},
	"liberal_arts": {
		"Psychology": {
			DirectCareers: []string{
				"Clinical Psychologist",
				"Counseling Psychologist",
				"UX Researcher",
				"HR Specialist",
				"Market Research Analyst",
			},
			AlternativePaths: []string{
				"Product Manager",
				"Data Analyst",
				"Social Media Manager",
				"Training Coordinator",
				"Sales Representative",
			},
			SkillsGap: []string{
				"Research methodology",
				"Statistical analysis software",
				"Business knowledge",
				"Technology tools",
				"Industry certifications",
			},
		},
		"Communication": {
			DirectCareers: []string{
				"Public Relations Specialist",
				"Content Writer",
				"Digital Marketing Manager",
				"Social Media Manager",
				"Corporate Communications",
			},
			AlternativePaths: []string{
				"UX Writer",
				"Product Marketing Manager",
				"Training Specialist",
				"Event Coordinator",
				"Business Analyst",
			},
			SkillsGap: []string{
				"Digital marketing tools",
				"Data analysis",
				"SEO knowledge",
				"Design basics",
				"Project management",
			},
		},
	},
	"healthcare_fields": {
		"Biology/Biomedical Sciences": {
			DirectCareers: []string{
				"Research Scientist",
				"Laboratory Technician",
				"Quality Control Analyst",
				"Biomedical Engineer",
				"Clinical Research Coordinator",
			},
			AlternativePaths: []string{
				"Pharmaceutical Sales",
				"Science Writer",
				"Patent Analyst",
				"Regulatory Affairs",
				"Biotech Consultant",
			},
			SkillsGap: []string{
				"Regulatory knowledge",
				"Business skills",
				"Advanced instrumentation",
				"Data analysis",
				"Project management",
			},
		},
	},
}

// SetupDegreeRoutes wires the degree catalog and degree-to-career guidance.
func SetupDegreeRoutes(api *gin.RouterGroup, completer ai.Completer) {
	api.GET("/degree-programs", func(c *gin.Context) {
		c.JSON(http.StatusOK, degreeMappings)
	})

	api.POST("/degree-career-search", func(c *gin.Context) {
		var req models.DegreeCareerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		guidance, err := completer.Complete(c.Request.Context(), ai.DegreeCareerSystem, ai.DegreeCareerPrompt(req.Degree, req.CareerInterest))
		if err != nil {
			logger.Error("Degree career completion failed", "degree", req.Degree, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.DegreeGuidance{
			Degree:         req.Degree,
			CareerInterest: req.CareerInterest,
			Guidance:       guidance,
			GeneratedAt:    time.Now().UTC(),
		})
	})
}
