package rules

var defaultExcludedFiles = []string{
	// Secrets and OS noise
	".env", ".DS_Store", "Thumbs.db", "Desktop.ini",

	// GraphRAG outputs
	"graphrag_run.log", "indexing-engine.log",
	"entities.parquet", "relationships.parquet", "communities.parquet", "community_reports.parquet",
	"text_units.parquet", "documents.parquet",
	"create_base_extracted_entities.parquet", "create_base_entity_graph.parquet",
	"create_final_entities.parquet", "create_final_relationships.parquet",
	"create_final_communities.parquet", "create_final_community_reports.parquet",
	"domain_examples.txt", "entity_extraction.txt", "community_report.txt", "summarize_descriptions.txt",

	// Pipeline outputs
	"pipeline_results.json", "extraction_results.json", "processing_log.txt", "pipeline_log.txt",
	"monitor_log.txt", "extraction_log.txt", "processing_summary.json", "extraction_summary.json",
	"pipeline_status.json", "run_summary.json", "performance_metrics.json",

	// Graph analysis exports
	"graph_analysis.json", "network_analysis.json", "node_analysis.json", "edge_analysis.json",
	"community_detection.json", "centrality_analysis.json", "graph_metrics.json",
	"graph_export.gexf", "graph_export.graphml", "graph_export.gml", "network_export.json",
	"adjacency_matrix.csv", "edge_list.csv", "node_list.csv",
	"graph_visualization.html", "network_visualization.html",

	// Token and content statistics
	"token_counts.json", "token_analysis.json", "content_analysis.json", "document_stats.json", "processing_stats.json",

	// Test and debug leftovers
	"test_python_detection.py", "debug_output.txt", "test_output.json", "debug_log.txt",

	// Generic JSON outputs
	"output.json", "results.json", "processed.json", "extracted.json", "data.json", "cache.json",
	"temp.json", "backup.json", "export.json", "report.json", "log.json", "response.json",
	"api-response.json", "processed_documents.json", "extracted_text.json", "vectorstore.json",
	"embeddings.json", "index.json", "metadata.json", "processed_metadata.json",

	// Lock files and package manifests of vendored code
	"package-lock.json", "yarn.lock", "composer.lock", "Pipfile.lock", "poetry.lock",
	"pnpm-lock.yaml", "npm-shrinkwrap.json", "bower.json", "component.json",

	// Virtual environment files
	"pyvenv.cfg", "activate", "activate.bat", "activate.ps1", "activate.fish", "activate.csh", "pip-selfcheck.json",

	// IDE, coverage and test caches
	".vscode", ".idea", ".coverage", ".nyc_output", "coverage.xml", ".hypothesis", ".pytest_cache",

	// Long boilerplate documents
	"CHANGELOG.md", "CHANGELOG.txt", "HISTORY.md", "HISTORY.txt",
	"LICENSE", "LICENSE.txt", "LICENSE.md", "COPYING", "NOTICE", "NOTICE.txt",
	"AUTHORS", "AUTHORS.txt", "CONTRIBUTORS", "CONTRIBUTORS.txt",
	"INSTALL", "INSTALL.txt", "INSTALL.md",
}

var defaultExcludedDirs = []string{
	// VCS, caches, environments
	"__pycache__", ".git", DependencyDir, "dist", ".netlify",
	"venv", ".venv", "env", "virtualenv",
	"cache", "artifacts", "reports", "logs", "temp", "tmp",
	"debug", "prompts",

	// RAG and vector stores
	"graphrag_data", "RAGstages", "pipeline_output", "processing_output", "extracted_output",
	"vectorstore", "embeddings", "index", "search_index", "vector_index",
	"chroma_db", "faiss_index", "lancedb", "qdrant_storage",

	// Analysis outputs
	"output", "results", "processed_data", "analysis_results", "graph_output", "network_output",
	"visualization_output", "exports", "backups",

	// Library, vendor and build trees
	"lib", "libs", "vendor", "vendors", "third-party", "third_party", "site-packages",
	"include", "bin", "build", "target",
	".pytest_cache", ".coverage", ".mypy_cache", ".tox", "htmlcov", "coverage",

	// Docs, examples and tests
	"docs", "documentation", "examples", "samples",
	"test", "tests", "testing", "__tests__", "spec", "specs",
}

// Root-relative; each prunes the directory and everything under it.
var defaultExcludedPaths = []string{
	"graphrag_data/output",
	"graphrag_data/logs",
	"graphrag_data/cache",
	"graphrag_data/artifacts",
	"graphrag_data/prompts",
	"graphrag_data/input",
	"graphrag_data/storage",
}

var defaultFilePatterns = []string{
	// Compiled and editor artifacts
	"*.pyc", "*.pyo", "*.pyd", "*.so", "*.dll", "*.dylib", "*.o", "*.obj",
	"*.exe", "*.out", "*.class", "*.jar", "*.war", "*.swp", "*.swo", "*~",
	"*.tmp", "*.log", "npm-debug.log*", "yarn-debug.log*", "yarn-error.log*",
	"lerna-debug.log*", "*.cover", "*.py,cover",

	// Data dumps
	"*.csv", "*.parquet", "*.db", "*.sqlite", "*.sqlite3",
	"graphrag_*.log", "*_monitor_*.log", "*.lancedb",

	// Pipeline outputs
	"*_extracted.json", "*_processed.json", "*_results.json",
	"*_output.json", "*_summary.json", "*_report.json",
	"*_analysis.json", "*_metrics.json", "*_stats.json",
	"pipeline_*", "extraction_*", "processing_*",
	"graph_*", "network_*", "community_*",
	"create_*.parquet", "final_*.parquet", "base_*.parquet",
	"*_pipeline.log", "*_extraction.log", "*_processing.log",
	"*_indexing.log", "*_graph.log", "*_monitor.log",

	// Backups and exports
	"*.backup", "*.bak", "*.temp", "*.cache",
	"*.gexf", "*.graphml", "*.gml", "*.gephi",
	"*.faiss", "*.ann", "*.hnsw", "*.ivf",
	"*_output.zip", "*_results.tar.gz", "*_export.zip",

	// Test and debug naming
	"test_*.py", "debug_*", "*_test.json", "*_debug.log",
}

var defaultLibraryTokens = []string{
	"jquery", "bootstrap", "lodash", "moment", "axios", "react", "vue", "angular",
	"webpack", "babel", "eslint", "prettier", "typescript", "d3.js", "chart.js",
	"three.js", "socket.io", "express", "mongoose", "sequelize", "prisma",
	"tensorflow", "pytorch", "numpy", "pandas", "scipy", "matplotlib",
	"requests", "flask", "django", "fastapi", "sqlalchemy", "celery",
}
