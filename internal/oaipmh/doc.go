// Package oaipmh wraps metadata records in OAI-PMH response envelopes.
//
// A Repository knows its identifier, base URL and metadata format, and turns
// items into record elements:
//
//	<record>
//	  <header>
//	    <identifier>oai:shpl:42</identifier>
//	    <datestamp>2024-03-01</datestamp>
//	  </header>
//	  <metadata>
//	    <oai_dc:dc ...>...</oai_dc:dc>
//	  </metadata>
//	</record>
//
// Records are then placed in ListRecords or GetRecord responses. Request
// validation and resumption tokens are out of scope; callers assemble the
// records they want to publish.
package oaipmh
