package ai

import (
	"fmt"
	"strings"

	"nextstep-career-api/models"
)

// Prompt composers. Pure string assembly, one function per use case; the
// caller pairs the system message with the user message in a single
// Complete call.

const JobAnalysisSystem = `You are an expert career advisor. Analyze job descriptions and provide detailed insights about:
1. Required qualifications (education, skills, experience)
2. Job responsibilities and requirements
3. Career level and growth potential
4. Salary expectations (if mentioned)
5. Company culture indicators
6. Match assessment for the given user profile

Respond in JSON format with the following structure:
{
    "required_education": "education level needed",
    "required_skills": ["skill1", "skill2"],
    "required_experience": "years of experience needed",
    "responsibilities": ["responsibility1", "responsibility2"],
    "career_level": "entry/mid/senior level",
    "growth_potential": "description of growth opportunities",
    "salary_range": "salary information if available",
    "company_culture": "culture indicators",
    "match_score": 0.0,
    "match_assessment": "detailed assessment of user fit"
}
The match_score field must be a number between 0 and 1 representing how well the profile fits the role.`

const RecommendationsSystem = "You are a career coach providing actionable advice."

const CareerAdviceSystem = `You are an expert career advisor with deep knowledge of various industries, job markets, and career paths. Provide personalized, actionable career advice based on the user's profile and specific questions. Your advice should be:
1. Practical and actionable
2. Based on current job market trends
3. Tailored to their education and experience level
4. Encouraging yet realistic
5. Include specific next steps they can take`

const MarketInsightsSystem = `You are a job market analyst. Provide current insights about specific fields including:
1. Job market trends
2. In-demand skills
3. Salary ranges
4. Growth outlook
5. Top companies hiring
6. Emerging opportunities`

const SuggestionsSystem = "You are a career advisor helping users discover related topics of interest."

const PopularTopicsSystem = `You are a career trends analyst. Respond in JSON format with the following structure:
{
    "trending_careers": ["career1", "career2"],
    "popular_questions": ["question1", "question2"],
    "industry_insights": ["industry1", "industry2"]
}
Each list must contain between 5 and 8 entries.`

const DegreeCareerSystem = `You are a specialized academic and career counselor. Help students understand the connection between their degree program and career opportunities. Provide:

1. Direct Career Paths: jobs directly related to the degree
2. Alternative Career Paths: unexpected but viable career options
3. Skills Development: what skills to develop beyond coursework
4. Education Enhancement: additional certifications, minors, or courses to consider
5. Timeline: realistic timeline from graduation to career establishment
6. Action Steps: specific next steps the student can take now

Make your response practical, encouraging, and actionable.`

// System messages for anonymous search, keyed by search type.
var searchSystems = map[string]string{
	models.SearchTypeGeneral: `You are an expert career advisor providing helpful, actionable career guidance. Answer career-related questions with:
1. Clear, practical advice
2. Current industry insights
3. Specific next steps
4. Educational requirements when relevant
5. Growth opportunities
Keep responses comprehensive but concise.`,

	models.SearchTypeCareerPath: `You are a career path specialist. Help users understand different career trajectories by providing:
1. Various career options in their area of interest
2. Educational requirements for each path
3. Typical career progression
4. Skills needed at each level
5. Salary expectations
6. Industry outlook`,

	models.SearchTypeSkills: `You are a skills development advisor. Focus on:
1. Current in-demand skills in the relevant field
2. How to develop these skills (courses, certifications, practice)
3. Skill progression pathways
4. Time investment needed
5. Best resources for learning
6. How skills translate to job opportunities`,

	models.SearchTypeIndustry: `You are an industry analyst. Provide insights about:
1. Industry trends and growth
2. Major companies and employers
3. Geographic job markets
4. Salary ranges and compensation
5. Future outlook and opportunities
6. Entry points into the industry`,
}

// SearchSystem returns the system message for a search type, falling back to
// the general advisor for anything unrecognized.
func SearchSystem(searchType string) string {
	if msg, ok := searchSystems[searchType]; ok {
		return msg
	}
	return searchSystems[models.SearchTypeGeneral]
}

// profileContext renders the profile as the human-readable block embedded in
// profile-scoped prompts.
func profileContext(p *models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	if p.FieldOfStudy != "" {
		fmt.Fprintf(&b, "- Education: %s in %s\n", p.EducationLevel, p.FieldOfStudy)
	} else {
		fmt.Fprintf(&b, "- Education: %s\n", p.EducationLevel)
	}
	fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(&b, "- Experience: %d years\n", p.ExperienceYears)
	if p.CurrentRole != "" {
		fmt.Fprintf(&b, "- Current Role: %s\n", p.CurrentRole)
	}
	fmt.Fprintf(&b, "- Career Interests: %s", strings.Join(p.CareerInterests, ", "))
	return b.String()
}

// JobAnalysisPrompt pairs a job description with the profile it is analyzed
// against.
func JobAnalysisPrompt(p *models.Profile, jobDescription string) string {
	return fmt.Sprintf(`Please analyze this job description:

%s

For this user profile:
%s`, jobDescription, profileContext(p))
}

// RecommendationsPrompt asks for candidacy improvements given a completed
// analysis.
func RecommendationsPrompt(p *models.Profile, analysisText string) string {
	return fmt.Sprintf(`Based on the job analysis, provide 3-5 specific recommendations for the user to improve their candidacy for this role. Consider their current profile and what's missing. Return one recommendation per line.

Job Analysis: %s

User Profile:
%s`, analysisText, profileContext(p))
}

func CareerAdvicePrompt(p *models.Profile, query string) string {
	return fmt.Sprintf(`User Question: %s

User Profile Context:
%s

Please provide detailed career advice addressing their question.`, query, profileContext(p))
}

func MarketInsightsPrompt(field string) string {
	return fmt.Sprintf("Provide comprehensive job market insights for the %s field in 2025.", field)
}

func SearchPrompt(query string) string {
	return fmt.Sprintf(`User Query: %s

Please provide comprehensive career guidance addressing this question. If the query is broad, break down your response into actionable sections and provide specific guidance they can follow.`, query)
}

func SuggestionsPrompt(query string) string {
	return fmt.Sprintf(`Based on this career query: %q, suggest 3-4 related questions or topics the user might want to explore next. Return only the suggestions, one per line.`, query)
}

func PopularTopicsPrompt() string {
	return "List the currently trending careers, the career questions people ask most, and the industries worth watching."
}

func DegreeCareerPrompt(degree, careerInterest string) string {
	return fmt.Sprintf(`Student's Degree Program: %s
Career Interest/Area: %s

Please provide comprehensive guidance on how this degree can lead to career success, including both traditional and non-traditional paths.`, degree, careerInterest)
}
