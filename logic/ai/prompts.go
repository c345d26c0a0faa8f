package ai

const systemAnalyze = "You are a legal AI assistant specializing in contract analysis and clause review. Provide accurate, professional legal analysis."

const systemSimplify = "You are a legal document simplification expert. Convert complex legal language into clear, understandable text while preserving legal meaning."

const systemChat = `You are Clario, an AI legal assistant. You help users with:
- Legal document analysis
- Clause-by-clause explanations
- Legal term definitions
- Risk assessment
- Compliance guidance
- Document simplification

Always provide accurate, helpful legal information. If you're unsure about something, say so.
Be professional but approachable. Focus on practical legal advice.`

const systemGenerate = "You are a legal document generation expert. Create professional, comprehensive legal documents that are legally sound and well-structured."

const systemClauseCheck = "You are a legal compliance expert specializing in standard contract clauses and risk assessment."

const promptAnalyze = `Analyze the following legal document and provide a clause-by-clause breakdown.
For each clause, identify:
1. The clause text
2. The type of clause (liability, termination, payment, confidentiality, indemnification, force-majeure, etc.)
3. Risk level (low, medium, high, critical)
4. Whether it's standard or non-standard
5. Analysis and recommendations
6. Suggested improvements if needed

Document:
{{.Document}}

Return the response in JSON format with the following structure:
{
  "clauses": [
    {
      "clause": "exact clause text",
      "type": "clause type",
      "riskLevel": "low|medium|high|critical",
      "status": "standard|non-standard|missing|risky",
      "analysis": "detailed analysis",
      "recommendations": ["recommendation1", "recommendation2"],
      "standardClause": "suggested standard clause if applicable"
    }
  ],
  "overallRisk": "percentage",
  "summary": "overall document analysis"
}

Output JSON only. No markdown.`

const promptSimplify = `Simplify the following legal document by:
1. Replacing legal jargon with plain language
2. Breaking up long, complex sentences
3. Using simpler vocabulary while maintaining legal accuracy
4. Keeping the same meaning and legal effect
5. Maintaining the document structure

Original Document:
{{.Document}}

Return only the simplified version without any additional commentary.`

const promptClauseCheck = `Analyze the following legal document and check for standard clauses.
Identify:
1. Which standard clauses are present
2. Which standard clauses are missing
3. Any non-standard or unusual clauses
4. Risk assessment for each clause
5. Recommendations for improvement

Standard clauses to check for:
- Liability limitation
- Indemnification
- Termination
- Force majeure
- Confidentiality
- Governing law
- Dispute resolution
- Payment terms
- Intellectual property
- Data protection

Document:
{{.Document}}

Return in JSON format:
{
  "standardClauses": [
    {
      "name": "clause name",
      "present": true/false,
      "text": "clause text if present",
      "riskLevel": "low|medium|high|critical",
      "recommendation": "suggestion"
    }
  ],
  "missingClauses": ["list of missing standard clauses"],
  "nonStandardClauses": ["list of unusual clauses"],
  "overallRisk": "percentage"
}

Output JSON only. No markdown.`

// Generation templates keyed by document type; unknown types fall back
// to the generic prompt with the raw parameter map.
var generateTemplates = map[string]string{
	"nda": `Generate a comprehensive Non-Disclosure Agreement (NDA) with the following parameters:
- Parties: {{param "parties" "Company and Recipient"}}
- Purpose: {{param "purpose" "Business discussions"}}
- Duration: {{param "duration" "2 years"}}
- Jurisdiction: {{param "jurisdiction" "State of incorporation"}}

Include standard NDA clauses for confidentiality, exceptions, return of information, and remedies.`,

	"employment": `Generate an Employment Agreement with the following parameters:
- Position: {{param "position" "Employee"}}
- Salary: {{param "salary" "To be determined"}}
- Start Date: {{param "startDate" "Upon execution"}}
- Location: {{param "location" "Company offices"}}

Include standard employment clauses for duties, compensation, benefits, confidentiality, and termination.`,

	"privacy": `Generate a Privacy Policy for a {{param "businessType" "technology"}} company that:
- Collects: {{param "dataTypes" "personal information, usage data"}}
- Uses data for: {{param "purposes" "service provision, analytics"}}
- Shares with: {{param "sharing" "service providers, legal requirements"}}

Include standard privacy policy sections for data collection, use, sharing, and user rights.`,
}

const promptGenerateFallback = `Generate a legal document of type: {{.Type}}
Parameters: {{.Params}}

Create a comprehensive, professional legal document with all necessary clauses and provisions.`
