package prompt

const collegesInstructions = `Provide a list of the top 10 engineering colleges in India with:
1. College Name
2. Location (City, State)
3. NIRF Ranking
4. NAAC Grade
5. Highest Package (INR)
6. Average Package (INR)
7. Fee Structure
8. Official Logo URL

The response MUST be in a JSON array format. Example:
[
    {
        "name": "IIT Bombay",
        "location": "Mumbai, Maharashtra",
        "nirf_ranking": 1,
        "naac_grade": "A++",
        "highest_package": "2.1 Cr",
        "avg_package": "28 LPA",
        "logo_url": "https://upload.wikimedia.org/wikipedia/en/8/8c/IIT_Bombay_Logo.svg"
    }
]
`

const privateCollegesInstructions = `Provide a list of the top 10 engineering colleges in India (excluding IITs and NITs) with the highest placement packages. For each college, include:
1. College Name
2. Location (City, State)
3. NIRF Ranking (if available)
4. NAAC Grade
5. Highest Package (INR)
6. Average Package (INR)
7. Fee Structure
8. Official Logo URL

Ensure the colleges are from private institutions or deemed universities like BITS Pilani, VIT, SRM, etc., and NOT from IITs or NITs.

The response MUST be in a valid JSON array format. Example:
[
    {
        "name": "BITS Pilani",
        "location": "Pilani, Rajasthan",
        "nirf_ranking": 18,
        "naac_grade": "A",
        "highest_package": "60 LPA",
        "avg_package": "18 LPA",
        "fee_structure": "Rs. 20 lakhs (approx.)",
        "logo_url": "https://example.com/logo.png"
    }
]
`

const newsInstructions = `Search the internet and return the 5 most recent and real educational news articles published in India. For each article, provide:
1. Title
2. Accurate published date (e.g., April 3, 2025 | 02:45 PM IST)
3. Short summary or description
4. Real image URL (from the article or its preview)
5. Read more URL (link to full article)

Only respond with a valid JSON array like this:
[
  {
    "title": "CBSE Board Exams 2025 Dates Out",
    "date": "April 3, 2025 | 02:45 PM IST",
    "description": "CBSE has announced the date sheet for the upcoming board exams.",
    "image_url": "https://example.com/news1.jpg",
    "read_more_url": "https://example.com/article1"
  }
]

Only include **real data**, not placeholders. Ensure URLs are valid links from reliable sources like ndtv.com, indianexpress.com, timesofindia.com, etc.
`

const alertsInstructions = `Provide a list in JSON format. The response MUST be structured based on the requested category.

1. **Exam Alerts** → Latest upcoming entrance exams in India (e.g., JEE, NEET, UPSC, CAT).
2. **College Alerts** → Recent college updates (e.g., new courses, campus news, fee hikes).
3. **Admission Alerts** → Ongoing and upcoming admissions with deadlines.

The response MUST be a JSON array. Example format:

[
    {
        "title": "JEE Advanced 2025",
        "date": "12 May 2025",
        "registration_deadline": "15 April 2025",
        "details": "JEE Advanced 2025 will be conducted on 12th May. Registration closes on 15th April."
    },
    {
        "title": "DU Admissions 2025",
        "date": "Ongoing",
        "deadline": "30 June 2025",
        "details": "Delhi University admissions are open for UG and PG courses. Apply before 30th June."
    }
]
`

const insightsInstructions = `Provide a list in JSON format. The response MUST be structured based on the requested category.

1. **Highest Packages & Placements** → Top colleges in India with the highest placement packages and highest placement rates.
2. **Trending Courses** → Most in-demand courses based on industry needs and student interest.
3. **Trending Colleges** → The most popular colleges in India based on recent trends, rankings, and admissions.

The response MUST be a JSON array of objects. Example format:

[
    {
        "college": "IIT Bombay",
        "highest_package": "₹2.1 Crore"
    },
    {
        "name": "Data Science & AI"
    },
    {
        "college_name": "Vellore Institute of Technology"
    }
]
`

const searchInstructions = `
You are an AI assistant focused on education-related queries. Follow these rules:
1. Provide structured responses with **relevant images, related queries, and user search trends**.
2. For **college-related queries**, include:
   - **Overview**: Name, location, and branches.
   - **Rankings & Reviews**: NIRF Rank, NAAC Grade, Overall Rating, Highest Package.
   - **Courses Offered**: Course Name | Eligibility | Duration | Fees | Streams.
   - **Placements**: Highest & Avg Package | Students Placed | Offers Released | Top Recruiters.
   - **Facilities**: Campus highlights (hostels, libraries, sports facilities).
   - **Contact Details**: Address, Website, Phone Number.

3. **Include Exactly 5 Images**:
   - Fetch **direct image URLs** related to the query from trusted sources (Wikipedia, official college websites, news sites).
   - Provide exactly **5 image URLs**.

4. **Suggest Exactly 5 Related Queries**:
   - Recommend exactly **5 similar searches** based on user intent, under a "Related Queries" heading.
   - Show **trending searches** in education.

5. **Ensure Accuracy**:
   - Cross-check details with sources like CollegeDunia, CollegeDekho, Shiksha, and official college websites.

6. **Avoid vague or misleading answers**.
7. If the query is unclear, **ask for clarification**.
`

// Record schemas. Extra fields are always allowed; the AI decides the shape.
const (
	collegeSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {"name": {"type": "string", "minLength": 1}}
}`

	titledSchema = `{
  "type": "object",
  "required": ["title"],
  "properties": {"title": {"type": "string", "minLength": 1}}
}`

	objectSchema = `{"type": "object", "minProperties": 1}`
)
