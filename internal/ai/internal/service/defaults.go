// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import "github.com/ecodeclub/mastersolis/internal/ai/internal/domain"

// defaultConfigs 启动的时候写入，已经存在的不会覆盖，后台改过的以后台为准
func defaultConfigs(model string) []domain.BizConfig {
	return []domain.BizConfig{
		{
			Biz:          domain.BizResumeExtract,
			Model:        model,
			Temperature:  0.1,
			JSONMode:     true,
			MaxInput:     60000,
			SystemPrompt: "You extract structured data from resumes. Reply with a single JSON object only.",
			PromptTemplate: `Extract the candidate information from the resume below.
Return a JSON object with exactly these keys:
- "name": string
- "email": string
- "phone": string
- "skills": array of strings
- "experience": string
- "education": string
- "certifications": array of strings
Use an empty string or an empty array when a field is missing.

Resume:
%s`,
		},
		{
			Biz:          domain.BizApplicationScore,
			Model:        model,
			Temperature:  0.2,
			JSONMode:     true,
			SystemPrompt: "You are a recruiter assessing job applications. Reply with a single JSON object only.",
			PromptTemplate: `Analyze this candidate's application for the position of %s:

Job Requirements:
- Skills: %s
- Experience: %s
- Requirements: %s

Candidate Profile:
- Name: %s
- Experience: %s years
- Skills: %s
- Education: %s
- Cover Letter: %s

Provide:
1. A match score (0-100) based on how well the candidate fits the role
2. A brief summary (2-3 sentences) highlighting key strengths and any gaps

Return JSON: {"score": number, "summary": string}`,
		},
		{
			Biz:         domain.BizApplicationEmail,
			Model:       model,
			Temperature: 0.7,
			PromptTemplate: `Generate a professional and warm email confirmation for %s who just applied for the %s position at Mastersolis Infotech.

The email should:
- Thank them for their application
- Confirm we received their application
- Mention that our team will review their application carefully
- State that we'll contact them within 5-7 business days if they're selected for an interview
- Be encouraging and professional
- Sign off as "Mastersolis Recruitment Team"

Keep it concise (3-4 paragraphs).`,
		},
		{
			Biz:         domain.BizBlogSummary,
			Model:       model,
			Temperature: 0.3,
			PromptTemplate: `Summarize this blog post in 3-4 concise bullet points that capture the key takeaways:

%s`,
		},
		{
			Biz:         domain.BizBlogSEO,
			Model:       model,
			Temperature: 0.5,
			JSONMode:    true,
			PromptTemplate: `For this blog post titled "%s":

Content: %s...

Generate:
1. A compelling 2-sentence summary
2. An SEO-optimized meta description (150-160 characters)

Return as JSON: {"summary": string, "seo_description": string}`,
		},
		{
			Biz:         domain.BizBlogGenerate,
			Model:       model,
			Temperature: 0.8,
			MaxInput:    200,
			PromptTemplate: `Write a comprehensive, professional blog post about: "%s"

The post should:
- Be 500-800 words
- Include an introduction, main points, and conclusion
- Be informative and engaging
- Use markdown formatting (headers, lists, etc.)
- Be relevant to technology and business

Write the complete blog post content:`,
		},
		{
			Biz:         domain.BizContactEmail,
			Model:       model,
			Temperature: 0.7,
			PromptTemplate: `Generate a professional and warm email response for a contact form submission from %s (%s).
They wrote: "%s".
The email should:
- Thank them for reaching out to Mastersolis Infotech
- Acknowledge their inquiry
- Mention that our team will review their message and get back to them within 24 hours
- Be friendly, professional, and encouraging
- Sign off as "The Mastersolis Team"
Keep it concise (3-4 paragraphs).`,
		},
		{
			Biz:         domain.BizChat,
			Model:       model,
			Temperature: 0.7,
			MaxInput:    1000,
			PromptTemplate: `You are a helpful AI assistant for Mastersolis Infotech, a technology solutions company.

Company Context:
- We offer Web Development, Mobile App Development, Cloud Solutions, and AI/ML services
- We have offices in San Francisco
- We're hiring for various positions
- We specialize in enterprise technology solutions

User Question: %s

Provide a helpful, friendly, and professional response. If asked about services, jobs, or company info, provide relevant details. Keep responses concise (2-3 sentences).`,
		},
		{
			Biz:          domain.BizResumeSuggest,
			Model:        model,
			Temperature:  0.7,
			JSONMode:     true,
			MaxInput:     2000,
			SystemPrompt: "You are a career coach improving resumes. Reply with a single JSON object only.",
			PromptTemplate: `Based on this resume information:
Name: %s
Current Role: %s
Skills: %s

Provide professional suggestions for:
1. A compelling professional summary (2-3 sentences)
2. 5 additional relevant skills to consider adding
3. 3 power words to enhance job descriptions

Return JSON: {"summary": string, "skills": [string], "power_words": [string]}`,
		},
	}
}
