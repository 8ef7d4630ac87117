package openai

const matchResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "document_ids": {
      "type": "array",
      "items": {
        "type": "string"
      }
    }
  },
  "required": ["document_ids"],
  "additionalProperties": false
}`

const matchPromptTemplate = `You are a document retrieval assistant. The user owns a collection of personal
documents and asks a question about them. You receive the collection as a JSON
array of document records: each record has an id, and may have an owner, a type,
a company, a country, a summary, and keywords.

Select the documents that answer the user's question and return their ids as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Return ids exactly as they appear in the collection; never invent an id.
- Order ids from most to least relevant.
- Match on meaning, not exact wording: "travel papers" should match passports and visas.
- If no document answers the question, return "document_ids": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Question: "which travel documents do I have for Denmark?"
Collection: [{"id":"12","owner":"John Doe","type":"Passport","country":"Denmark"},{"id":"31","owner":"John Doe","type":"Invoice"}]
Output:
{
  "document_ids": ["12"]
}`

const criteriaResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "owner": {
      "type": "string"
    },
    "document_type": {
      "type": "string"
    },
    "country": {
      "type": "string"
    },
    "keywords": {
      "type": "array",
      "items": {
        "type": "string"
      }
    }
  },
  "required": ["owner", "document_type", "country", "keywords"],
  "additionalProperties": false
}`

const criteriaPromptTemplate = `Extract structured search criteria from the user's question about their
personal document collection and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- owner is the person the question is about, empty string when the question names nobody.
- document_type is the kind of document the question asks for (passport, visa, invoice, contract, ...), empty string when unspecified.
- country is the country the question mentions, empty string when unspecified.
- keywords are other meaningful search terms from the question, lowercase; [] when there are none.
- Do not put the owner, type, or country into keywords as well.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "find John's passport for Denmark"
Output:
{
  "owner": "John",
  "document_type": "passport",
  "country": "Denmark",
  "keywords": []
}

Example (no entities):
Input: "anything about my house purchase"
Output:
{
  "owner": "",
  "document_type": "",
  "country": "",
  "keywords": ["house", "purchase"]
}`

const metadataResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "owner": {
      "type": "string"
    },
    "document_type": {
      "type": "string"
    },
    "company": {
      "type": "string"
    },
    "country": {
      "type": "string"
    },
    "summary": {
      "type": "string"
    },
    "expiry_date": {
      "type": "string"
    }
  },
  "required": ["owner", "document_type", "company", "country", "summary", "expiry_date"],
  "additionalProperties": false
}`

const metadataPromptTemplate = `You are given the raw text of a scanned personal document. Infer its metadata
and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- owner is the full name of the person the document belongs to, empty string when unclear.
- document_type is a short noun phrase in title case naming the kind of document: "Passport", "Visa", "Invoice", "Insurance Policy".
- company is the issuing or counterparty organization, empty string when there is none.
- country is the country the document relates to, empty string when unclear.
- summary is one or two plain sentences describing what the document is.
- expiry_date is the expiration date in YYYY-MM-DD form, empty string when the document does not expire or no date is readable.
- Use only information present in the text. Do not hallucinate.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

const keywordsResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z]+( [a-z]+)*$"
      }
    }
  },
  "required": ["keywords"],
  "additionalProperties": false
}`

const keywordsPromptTemplate = `Extract retrieval keywords from the given document text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Keywords must be lowercase, 1-3 words each, singular form only.
- Return at most %d keywords, most useful for finding this document first.
- Include only terms that appear in or are clearly implied by the text. Do not hallucinate.
- If no keywords can be identified, return "keywords": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "KINGDOM OF DENMARK PASSPORT ... Surname DOE Given names JOHN ..."
Output:
{
  "keywords": ["passport", "denmark", "travel", "identity"]
}`
