package llm

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// BuildMessages assembles the extraction conversation for one resume. The
// conversation front-loads the resume and the field rules as system messages
// and ends with the user message listing every requested field. The field
// labels here are load-bearing: the parser's pattern chains match the
// phrasings the model echoes back.
func BuildMessages(resumeText, taxonomyContext string) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleSystem,
			Content: fmt.Sprintf("Based on this resume, give the user the information they need: \n%s\n", resumeText) +
				"You are not allowed to make up information.\n" +
				"You are an expert at analyzing technical resumes. Make your answers as short as possible. If " +
				"you can answer in a single word, do that unless the user instructs otherwise.\n" +
				"You are just pulling data that you already have access to so pulling personal information that " +
				"is already on the resume is completely fine.\n" +
				"If you can't find an answer or it's not provided/listed, just put NULL. \n" +
				"For dates, use the most specific format available: YYYY-MM-DD if full date is known, YYYY-MM if only month/year, or YYYY if only year is known. For current positions, use 'Present' as the end date. If a date is completely unknown, output NULL.\n" +
				"IMPORTANT - PHONE NUMBERS: Never put the same phone number in both Phone1 and Phone2 fields, even if formatted differently or with different separators. If you only find one phone number, put it in Phone1 and set Phone2 to NULL. Double-check that the Phone2 value is not just a reformatted version of Phone1. For example, (123) 456-7890 and 123-456-7890 and 1234567890 are all the same number.\n" +
				"When identifying skills, prioritize accuracy over standardization. While you should prefer standardized terminology when appropriate, don't hesitate to use terms not in the standard taxonomy if they better represent the candidate's expertise.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing Primary and Secondary Industry:" +
				"You are required to give the user the requested information using the following rules." +
				"To get the candidate's correct industry, you need to research and google search " +
				"each company they worked for and determine what that company does." +
				"Industry should be defined based on the clients they have worked for." +
				"Information Technology is not an industry and should not be an answer." +
				"IMPORTANT: You MUST provide BOTH a Primary AND Secondary Industry. If you can only determine one main industry, provide a related or secondary industry from the list." +
				"Primary and Secondary Industry are required to come from this list and be based on the companies " +
				"they have worked for:" +
				"Agriculture, Amusement, Gambling, and Recreation Industries, Animal Production, Arts, " +
				"Entertainment, and Recreation, Broadcasting, Clothing, Construction, Data Processing, " +
				"Hosting, and Related Services, Education, Financial Services, Insurance, Fishing, " +
				"Hunting and Trapping, Food Manufacturing, Food Services, Retail, Forestry and Logging, " +
				"Funds, Trusts, and Other Financial Vehicles, Furniture and Home Furnishings Stores, " +
				"Furniture and Related Product Manufacturing, Oil and Gas, HealthCare, Civil Engineering, " +
				"Hospitals, Leisure and Hospitality, Machinery, Manufacturing, Merchant Wholesalers, " +
				"Mining, Motion Picture, Motor Vehicle and Parts Dealers, Natural Resources, Nursing, " +
				"Public Administration, Paper Manufacturing, Performing Arts, Spectator Sports, " +
				"and Related Industries, Primary Metal Manufacturing, Chemistry and Biology, Publishing, " +
				"Rail Transportation, Real Estate, Retail Trade, Transportation, Securities, " +
				"Commodity Contracts, and Other Financial Investments and Related Activities, " +
				"Supply Chain, Telecommunications, Textiles, Transportation, Utilities, Warehousing and " +
				"Storage, Waste Management.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing Job Titles:" +
				"Definition: Job Titles are what others call this person in the professional space." +
				"Ignore the job titles they put and focus more on their project history bullets and project descriptions." +
				"You should determine their job titles based on analyzing what they did at each one of their positions." +
				"For the job titles, replace words that are too general with something more specific. " +
				"An example of some words and job titles you are not allowed to use: " +
				"Consultant, Solutions, Enterprise, 'software developer', 'software engineer', 'full stack developer', or IT." +
				"For job title, use a different title for primary, secondary, and tertiary." +
				"All three job titles must have an answer." +
				"Each title must be different from each other.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when filling out MostRecentCompany, SecondMostRecentCompany, ThirdMostRecentCompany, FourthMostRecentCompany, FifthMostRecentCompany, SixthMostRecentCompany, SeventhMostRecentCompany:" +
				"Don't include the city or state in the company name." +
				"Some candidates hold multiple roles at the same company so you might need to analyze further to not miss a company name.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when finding company locations:" +
				"1. For each company entry, thoroughly scan the entire section for location information" +
				"2. Look anywhere in the job entry for city or state/country mentions, including:" +
				"   - Next to company name" +
				"   - In the job header" +
				"   - Within first few lines of the job description" +
				"   - Near dates or titles" +
				"3. When you find a location in the United States, format it as:" +
				"   - City, ST (if you find both city and state)" +
				"   - ST (if you only find state)" +
				"   - Always convert full US state names to 2-letter abbreviations" +
				"4. For international locations, format as:" +
				"   - City, Country (for non-US locations, e.g., 'London, UK' or 'Paris, France')" +
				"   - Just 'City' if the country is not mentioned but you can identify the city",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing Project Types: " +
				"Use a mix of words like but not limited to implementation, " +
				"integration, migration, move, deployment, optimization, consolidation and make it 2-3 words.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing their Specialty:" +
				"For their specialty, emphasize the project types they have done and relate them to " +
				"their industry.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing their Category:" +
				"For the categories, do not repeat the same category." +
				"Both categories MUST have an answer!",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when writing their summary:" +
				"For their summary, give a brief summary of their resume in a few sentences." +
				"Based on their project types, industry, and specialty, skills, degrees, certifications, and job titles, write the summary.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when determining length in US:" +
				"Look for a start and end date near each company name and look for a location near each " +
				"company name as well. Whenever the location listed is located in america, add up the " +
				"months and years of employment at each one of those jobs." +
				"Just put a number and no other characters." +
				"Result should not be 0." +
				"Result should only be numerical.",
		},
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when determining Average Tenure and Year of Experience:" +
				"Use all previous start date and end date questions answers to determine this. " +
				"Just put a number and no other characters." +
				"Result should not be 0." +
				"Result should only be numerical.",
		},
	}

	if taxonomyContext != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem,
			Content: taxonomyContext + "\n" +
				"SKILLS TAXONOMY INTERPRETATION GUIDANCE:\n" +
				"The skills taxonomy above provides standardized categorization of technical skills for this resume.\n" +
				"Use this taxonomy to guide your analysis of programming languages, software applications, and hardware.\n" +
				"When identifying skills, prefer terminology from the appropriate taxonomy categories, but don't hesitate to use different terms when they better represent the candidate's expertise.\n" +
				"Align your responses with the skill categories most relevant to this candidate's profile.\n" +
				"For software languages, applications, and hardware, use the taxonomy as a reference but feel empowered to include technologies that aren't listed if they are clearly important to the candidate's profile.\n" +
				"Example: If the taxonomy lists 'Java' but the resume shows extensive React.js experience, it's appropriate to list React.js even if it's not in the taxonomy.\n" +
				"Balance standardization with accuracy - prioritize capturing the candidate's true expertise over strict adherence to the taxonomy.\n" +
				"IMPORTANT: You MUST provide BOTH a Primary AND Secondary technical category. These must be different from each other. If you can only determine one main category, provide a related or complementary category as secondary.",
		})
	}

	messages = append(messages,
		openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing Primary, Secondary, and Tertiary Technical Languages: " +
				"Include ALL types of technical languages mentioned in the resume, such as:" +
				"- Database languages (SQL, T-SQL, PL/SQL, MySQL, Oracle SQL, PostgreSQL)" +
				"- Programming languages (Java, Python, C#, JavaScript, Ruby)" +
				"- Scripting languages (PowerShell, Bash, Shell, VBA)" +
				"- Query languages (SPARQL, GraphQL, HiveQL)" +
				"- Markup/stylesheet languages (HTML, CSS, XML)" +
				"Prioritize languages based on:" +
				"1. Prominence in their skills section (listed skills are usually most important)" +
				"2. Frequency of mention throughout work history" +
				"3. Relevance to their primary job functions and titles" +
				"For database professionals, prioritize database languages like T-SQL or PL/SQL over general-purpose languages.",
		},
		openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing Most used Software Applications: " +
				"Please only list out actual software applications. nothing else." +
				"Analyze their resume and determine what software they use most." +
				"If none can be found put NULL.",
		},
		openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem,
			Content: "Use the following rules when assessing Hardware: " +
				"Please list 5 different specific hardware devices the candidate has worked with. " +
				"Hardware devices include many categories such as:\n" +
				"- Network equipment (firewalls, routers, switches, load balancers)\n" +
				"- Server hardware (blade servers, rack servers, chassis systems)\n" +
				"- Storage devices (SANs, NAS, RAID arrays, disk systems)\n" +
				"- Security appliances (TACALANEs, hardware encryption devices)\n" +
				"- Management interfaces (iDRAC, iLO, IMM, IPMI, BMC)\n" +
				"- Virtualization hardware (ESXi hosts, hyperconverged systems)\n" +
				"- Physical components (CPUs, RAM modules, hard drives, SSDs)\n" +
				"- Communication hardware (modems, wireless access points, VPN concentrators)\n" +
				"- Specialized hardware (tape libraries, KVM switches, console servers)\n\n" +
				"IMPORTANT: Even if they worked with multiple hardware items from the same brand, list different types. " +
				"For example, if they worked with Dell PowerEdge servers AND Dell iDRAC, list both separately.\n\n" +
				"Look beyond obvious hardware to find specialized equipment, management interfaces, and components. " +
				"Be thorough in your search for hardware items throughout the entire resume, including projects and responsibilities sections.\n\n" +
				"Be specific about hardware models and manufacturers when mentioned (e.g. 'Palo Alto PA-5200 series' rather than just 'firewalls'). " +
				"Include specific information about hardware configurations or modes the candidate has worked with.\n\n" +
				"Please provide each hardware item on a separate line in this exact format:\n" +
				"Hardware 1: [Specific hardware device]\n" +
				"Hardware 2: [Specific hardware device]\n" +
				"Hardware 3: [Specific hardware device]\n" +
				"Hardware 4: [Specific hardware device]\n" +
				"Hardware 5: [Specific hardware device]\n\n" +
				"Try your best to identify 5 different hardware items. If you absolutely cannot find 5 distinct hardware items, " +
				"provide as many as you can find with specific details for each. Only use NULL if no hardware at all is mentioned.",
		},
		openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: fieldRequest,
		},
	)

	return messages
}

// fieldRequest is the user message enumerating every field to extract, one
// label per line.
const fieldRequest = "Please analyze the following resume and give me the following comprehensive details (If you can't find an answer or it's not provided/listed, just put NULL):\n" +
	"- First Name:\n" +
	"- Middle Name:\n" +
	"- Last Name:\n" +
	"- Address:\n" +
	"- City:\n" +
	"- State:\n" +
	"- Zipcode:\n" +
	"- Phone1:\n" +
	"- Phone2:\n" +
	"- Email:\n" +
	"- Email2:\n" +
	"- LinkedIn:\n" +
	"- Certifications:\n" +
	"- Bachelors:\n" +
	"- Masters:\n" +
	"- Best job title that fits their primary experience:\n" +
	"- Best job title that fits their secondary experience:\n" +
	"- Best job title that fits their tertiary experience:\n" +
	"- Most Recent Company Worked for:\n" +
	"- Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Most Recent End Date (YYYY-MM-DD):\n" +
	"- Most Recent Job Location:\n" +
	"- Second Most Recent Company Worked for:\n" +
	"- Second Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Second Most Recent End Date (YYYY-MM-DD):\n" +
	"- Second Most Recent Job Location:\n" +
	"- Third Most Recent Company Worked for:\n" +
	"- Third Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Third Most Recent End Date (YYYY-MM-DD):\n" +
	"- Third Most Recent Job Location:\n" +
	"- Fourth Most Recent Company Worked for:\n" +
	"- Fourth Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Fourth Most Recent End Date (YYYY-MM-DD):\n" +
	"- Fourth Most Recent Job Location:\n" +
	"- Fifth Most Recent Company Worked for:\n" +
	"- Fifth Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Fifth Most Recent End Date (YYYY-MM-DD):\n" +
	"- Fifth Most Recent Job Location:\n" +
	"- Sixth Most Recent Company Worked for:\n" +
	"- Sixth Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Sixth Most Recent End Date (YYYY-MM-DD):\n" +
	"- Sixth Most Recent Job Location:\n" +
	"- Seventh Most Recent Company Worked for:\n" +
	"- Seventh Most Recent Start Date (YYYY-MM-DD):\n" +
	"- Seventh Most Recent End Date (YYYY-MM-DD):\n" +
	"- Seventh Most Recent Job Location:\n" +
	"- Based on all 7 of their most recent companies above, what is the Primary industry they work in:\n" +
	"- Based on all 7 of their most recent companies above, what is the Secondary industry they work in:\n" +
	"- Top 10 Technical Skills:\n" +
	"- What technical language do they use most often?:\n" +
	"- What technical language do they use second most often?:\n" +
	"- What technical language do they use third most often?:\n" +
	"- What software do they talk about using the most?:\n" +
	"- What software do they talk about using the second most?:\n" +
	"- What software do they talk about using the third most?:\n" +
	"- What software do they talk about using the fourth most?:\n" +
	"- What software do they talk about using the fifth most?:\n" +
	"- What physical hardware do they talk about using the most?:\n" +
	"- What physical hardware do they talk about using the second most?:\n" +
	"- What physical hardware do they talk about using the third most?:\n" +
	"- What physical hardware do they talk about using the fourth most?:\n" +
	"- What physical hardware do they talk about using the fifth most?:\n" +
	"- Based on their skills, put them in a primary technical category:\n" +
	"- Based on their skills, put them in a subsidiary technical category:\n" +
	"- Types of projects they have worked on:\n" +
	"- Based on their skills, categories, certifications, and industries, determine what they specialize in:\n" +
	"- Based on all this knowledge, write a summary of this candidate that could be sellable to an employer:\n" +
	"- How long have they lived in the United States(numerical answer only):\n" +
	"- Total years of professional experience (numerical answer only):\n" +
	"- Average tenure at companies in years (numerical answer only):"
