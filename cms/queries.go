package cms

const nodeFields = `
      id
      title
      slug
      excerpt
      content
      featuredImage {
        node {
          sourceUrl
          altText
        }
      }
      categories {
        edges {
          node {
            name
            slug
          }
        }
      }`

const postsByCategoryQuery = `
query PostsByCategory($categoryName: String!, $count: Int!) {
  posts(first: $count, where: { categoryName: $categoryName, orderby: { field: DATE, order: DESC } }) {
    edges {
      node {` + nodeFields + `
      }
    }
  }
}`

const postBySlugQuery = `
query PostBySlug($slug: String!) {
  posts(where: { name: $slug }) {
    edges {
      node {` + nodeFields + `
      }
    }
  }
}`

const certificateQuery = `
query Certificate($slug: String!, $categoryName: String!) {
  posts(where: { name: $slug, categoryName: $categoryName }) {
    edges {
      node {` + nodeFields + `
      }
    }
  }
}`

const postContentQuery = `
query PostContent($slug: ID!) {
  post(id: $slug, idType: SLUG) {
    content
  }
}`
